package diagas

type Theme struct {
	Accent string
}

type Frame struct {
	//kozue:provide as=Missing
	A int

	//kozue:provide as=*Theme
	B int

	//kozue:provide via=Theme
	C int
}
