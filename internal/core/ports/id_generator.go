package ports

// IDGenerator produces fresh identifiers for blocks constructed without one.
//
//go:generate go run go.uber.org/mock/mockgen -source=id_generator.go -destination=mocks/mock_id_generator.go -package=mocks
type IDGenerator interface {
	NewID() any
}
