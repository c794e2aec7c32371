package asinterface

//go:generate go tool kozue $GOFILE

import (
	"bytes"
	"io"
)

var _ io.Writer = (*bytes.Buffer)(nil)

type Console struct {
	//kozue:provide as=io.Writer
	Buf *bytes.Buffer
}
