package entity

type FileBucket string

const (
	Image = FileBucket("image")
)
