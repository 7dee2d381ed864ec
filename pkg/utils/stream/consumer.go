package stream

type Consumer[T any] interface {
	Consume(v T)
}

type ArrayConsumer[T any] struct {
	list []T
}

func NewArrayConsumer[T any]() *ArrayConsumer[T] {
	consumer := ArrayConsumer[T]{}
	return &consumer
}

func (c *ArrayConsumer[T]) Consume(v T) {
	c.list = append(c.list, v)
}

func (c *ArrayConsumer[T]) Collect() []T {
	return c.list
}
