package model

// Scope identifies who issued the current command.
type Scope struct {
	UserID      string // LINE user id
	DisplayName string // LINE profile name, may be empty
}
