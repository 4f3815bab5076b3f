package jose

// context holds the attributes of a key generation request. A nil field
// means the attribute was not given and the generator picks its own default.
type context struct {
	kty, crv, alg   *string
	size, publicExp *int
}

// apply the options to the context and returns it.
func (ctx *context) apply(opts ...Option) *context {
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Option is the type used to add attributes to the context.
type Option func(ctx *context)

// WithKty sets the key type, one of EC, RSA, OKP or oct.
func WithKty(kty string) Option {
	return func(ctx *context) {
		ctx.kty = &kty
	}
}

// WithCrv sets the curve for EC and OKP keys.
func WithCrv(crv string) Option {
	return func(ctx *context) {
		ctx.crv = &crv
	}
}

// WithSize sets the size in bits of RSA and oct keys.
func WithSize(size int) Option {
	return func(ctx *context) {
		ctx.size = &size
	}
}

// WithPublicExp sets the public exponent of RSA keys.
func WithPublicExp(exp int) Option {
	return func(ctx *context) {
		ctx.publicExp = &exp
	}
}

// WithAlg sets the "alg" member of the generated JWK. The value is not
// interpreted.
func WithAlg(alg string) Option {
	return func(ctx *context) {
		ctx.alg = &alg
	}
}
