package user

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

type Settings struct {
	// Timezone is an IANA zone name; it decides which calendar day an
	// expense and the dashboard's "today" fall on.
	Timezone string
	Currency string
}
