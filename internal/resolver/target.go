package resolver

import (
	"context"
	"strings"
)

// ResolveTarget rewrites a move-call target "@namespace/package::module::function"
// to "address::module::function". Targets that do not start with "@" are
// already on-chain and are returned unchanged.
func (r *Resolver) ResolveTarget(ctx context.Context, target string) (string, error) {
	if !strings.HasPrefix(target, "@") {
		return target, nil
	}

	pkg, rest, ok := strings.Cut(target, "::")
	if !ok || rest == "" {
		return "", InvalidPackageName(target)
	}

	address, err := r.ResolvePackage(ctx, pkg)
	if err != nil {
		return "", err
	}
	return address + "::" + rest, nil
}
