package domain

// Models lists every table created by AutoMigrate at startup.
func Models() []interface{} {
	return []interface{}{&User{}, &Task{}}
}
