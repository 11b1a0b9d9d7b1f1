package slarb

// Factory exposes the package constructors as a value so they can be bound
// in a service container.
type Factory struct{}

// NewFactory returns a Factory.
func NewFactory() *Factory { return &Factory{} }

func (*Factory) Success() Builder            { return Success() }
func (*Factory) Error() Builder              { return Error() }
func (*Factory) Respond(status bool) Builder { return Respond(status) }

// Make is the Factory form of Slarb.
func (*Factory) Make(status string, httpCode int, message string, data any) (Response, error) {
	return Slarb(status, httpCode, message, data)
}
