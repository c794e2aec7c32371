package multiplehosts

//go:generate go tool kozue $GOFILE

// Shell carries no providers of its own but still wants an empty
// registry, so descendants can treat every host uniformly.
//
//kozue:bindings
type Shell struct{}

type Panel struct {
	//kozue:provide
	Width int

	//kozue:provide
	Depth float64
}
