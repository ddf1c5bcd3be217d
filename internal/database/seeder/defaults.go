package seeder

func Defaults() []Seeder {
	return []Seeder{
		AccountsSeeder{},
	}
}
