package embeddedfield

//go:generate go tool kozue $GOFILE

type Theme struct {
	Accent string
}

type Frame struct {
	//kozue:provide
	*Theme
}
