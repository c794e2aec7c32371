package diagfield

type Panel struct {
	//kozue:provide
	_ int

	//kozue:provide
	Width int

	//kozue:provide
	Height int
}
