package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Sections *SectionRepository
	Records  *RecordRepository
	Salaries *SalaryRepository
	PTO      *PTORepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Sections: NewSectionRepository(database),
		Records:  NewRecordRepository(database),
		Salaries: NewSalaryRepository(database),
		PTO:      NewPTORepository(database),
	}
}
