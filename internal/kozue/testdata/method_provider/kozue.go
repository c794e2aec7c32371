package methodprovider

//go:generate go tool kozue $GOFILE

type User struct {
	Name string
}

type Session struct {
	user *User
}

//kozue:provide
func (s *Session) User() *User {
	return s.user
}
