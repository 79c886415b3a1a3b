package usecase

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"storymcp/internal/domain"
)

// PrimarySuffix is the namespace of the primary naming backend. Names
// ending in it (case-insensitively) are offered to the primary backend
// before the secondary catch-all.
const PrimarySuffix = ".eth"

var tracer = otel.Tracer("storymcp/internal/usecase")

// AddressResolver turns a caller-supplied identifier, either a literal
// address or a human-readable domain name, into a canonical on-chain address.
//
// Resolution is a fixed-order chain of independent steps, first match wins:
// the literal check runs first and is never shadowed by a name lookup; the
// primary naming backend is consulted for names in its suffix namespace;
// the secondary backend is the catch-all for any other syntax, including a
// primary-suffix name whose direct lookup failed. Every call re-queries the
// live registries; nothing is cached and nothing is retried. Calls are
// independent and reentrant.
type AddressResolver struct {
	primary   NamingBackend
	secondary NamingBackend
	logger    *slog.Logger
}

// NewAddressResolver creates an AddressResolver over the two naming
// backends, primary first.
func NewAddressResolver(primary, secondary NamingBackend, logger *slog.Logger) *AddressResolver {
	return &AddressResolver{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With("usecase", "AddressResolver"),
	}
}

// resolutionStep is one strategy of the resolution chain. It reports the
// matched (not yet canonicalized) address, or ok=false to advance the chain.
type resolutionStep struct {
	name string
	run  func(ctx context.Context, identifier string) (addr string, ok bool)
}

func (r *AddressResolver) steps() []resolutionStep {
	return []resolutionStep{
		{name: "literal", run: r.resolveLiteral},
		{name: "primary", run: r.resolvePrimary},
		{name: "secondary", run: r.resolveSecondary},
	}
}

// Resolve resolves identifier to the canonical (checksummed) form of an
// on-chain address. If no step matches, it fails with an error carrying the
// original identifier verbatim so the caller can tell "not found" from
// other fault classes.
func (r *AddressResolver) Resolve(ctx context.Context, identifier string) (string, error) {
	ctx, span := tracer.Start(ctx, "AddressResolver.Resolve",
		trace.WithAttributes(attribute.String("identifier", identifier)))
	defer span.End()

	for _, step := range r.steps() {
		addr, ok := step.run(ctx, identifier)
		if !ok {
			continue
		}
		canonical, err := domain.CanonicalAddress(addr)
		if err != nil {
			r.logger.Warn("Backend returned a malformed address, advancing the chain.",
				slog.String("step", step.name),
				slog.String("identifier", identifier),
				slog.String("address", addr))
			continue
		}
		span.SetAttributes(attribute.String("resolved_by", step.name))
		r.logger.Debug("Resolved identifier.",
			slog.String("step", step.name),
			slog.String("identifier", identifier),
			slog.String("address", canonical))
		return canonical, nil
	}
	return "", &domain.UnresolvedError{Input: identifier}
}

// resolveLiteral accepts identifiers that already are valid literal
// addresses. This is a local check with no network call, and it takes
// precedence even when a malformed address-like string would coincide with
// a registrable domain name; such strings fail the checksum here and fall
// through to the domain lookups instead.
func (r *AddressResolver) resolveLiteral(_ context.Context, identifier string) (string, bool) {
	if !domain.IsLiteralAddress(identifier) {
		return "", false
	}
	return identifier, true
}

// resolvePrimary forward-resolves names in the primary backend's suffix
// namespace. A backend fault is deliberately collapsed into "no match" so
// the chain keeps going, but it is logged as a distinct condition to keep
// transient faults distinguishable from genuine absence in the logs.
func (r *AddressResolver) resolvePrimary(ctx context.Context, identifier string) (string, bool) {
	if !strings.HasSuffix(strings.ToLower(identifier), PrimarySuffix) {
		return "", false
	}
	addr, err := r.primary.ForwardLookup(ctx, identifier)
	if err != nil {
		r.logger.Warn("Primary naming backend fault, advancing the chain.",
			slog.String("identifier", identifier),
			slog.Any("error", err))
		return "", false
	}
	return addr, addr != ""
}

// resolveSecondary is the catch-all: it offers the raw identifier to the
// secondary backend regardless of suffix. Keeping primary-suffix names
// eligible here is deliberate redundancy favoring availability over
// latency.
func (r *AddressResolver) resolveSecondary(ctx context.Context, identifier string) (string, bool) {
	addr, err := r.secondary.ForwardLookup(ctx, identifier)
	if err != nil {
		r.logger.Warn("Secondary naming backend fault, advancing the chain.",
			slog.String("identifier", identifier),
			slog.Any("error", err))
		return "", false
	}
	return addr, addr != ""
}

// ReverseResolve looks up the primary domain name registered for address.
// A name reported by the primary backend is accepted only if its forward
// resolution equals the canonical input address; anyone can point a reverse
// record at an address they do not own, so an unverified name would let a
// domain impersonate an account. An empty result with a nil error means no
// reverse record exists, which is a normal outcome and not an error.
func (r *AddressResolver) ReverseResolve(ctx context.Context, address string) (string, error) {
	ctx, span := tracer.Start(ctx, "AddressResolver.ReverseResolve",
		trace.WithAttributes(attribute.String("address", address)))
	defer span.End()

	canonical, err := domain.CanonicalAddress(address)
	if err != nil {
		return "", err
	}

	name, err := r.primary.ReverseLookup(ctx, canonical)
	switch {
	case err != nil:
		r.logger.Warn("Primary naming backend fault on reverse lookup.",
			slog.String("address", canonical),
			slog.Any("error", err))
	case name != "":
		forward, err := r.primary.ForwardLookup(ctx, name)
		if err != nil {
			r.logger.Warn("Primary naming backend fault verifying reverse record.",
				slog.String("address", canonical),
				slog.String("name", name),
				slog.Any("error", err))
		} else if fc, cerr := domain.CanonicalAddress(forward); cerr == nil && fc == canonical {
			span.SetAttributes(attribute.String("resolved_by", "primary"))
			return name, nil
		} else {
			r.logger.Warn("Discarding reverse record whose forward resolution does not match.",
				slog.String("address", canonical),
				slog.String("name", name),
				slog.String("forward", forward))
		}
	}

	name, err = r.secondary.ReverseLookup(ctx, canonical)
	if err != nil {
		r.logger.Warn("Secondary naming backend fault on reverse lookup.",
			slog.String("address", canonical),
			slog.Any("error", err))
		return "", nil
	}
	if name != "" {
		span.SetAttributes(attribute.String("resolved_by", "secondary"))
	}
	return name, nil
}
