package seeder

func Defaults() []Seeder {
	return []Seeder{
		EmployersSeeder{},
		SeekersSeeder{},
	}
}
