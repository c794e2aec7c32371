package diagmethod

type Clock struct {
	now int64
}

//kozue:provide
func (c *Clock) At(offset int64) int64 {
	return c.now + offset
}

//kozue:provide
func (c *Clock) Touch() {
	c.now++
}
