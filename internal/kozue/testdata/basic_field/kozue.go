package basicfield

//go:generate go tool kozue $GOFILE

type Window struct {
	// Title is pushed to every descendant that can take a string.
	//kozue:provide
	Title string
}
