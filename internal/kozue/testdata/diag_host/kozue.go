package diaghost

//kozue:bindings
type Reader interface {
	Read() string
}

type base struct{}

//kozue:bindings
type renamed = base

//kozue:provide
func Standalone() int {
	return 0
}
