package jsonapi

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/diwise/jsonapi/pkg/jsonapi/errors"
	"github.com/diwise/jsonapi/pkg/jsonapi/index"
	"github.com/diwise/jsonapi/pkg/jsonapi/types"
	"github.com/diwise/jsonapi/pkg/jsonapi/types/resources"
)

// resolver replaces relationship linkage with the resolved bodies of the referenced
// resources. Referenced resources are only ever looked up in the index, never among
// the primary data.
type resolver struct {
	idx    index.Index
	cfg    Config
	logger *slog.Logger

	// resources on the path from the current root down to the resource being resolved
	ancestors map[types.ResourceID]struct{}
	depth     int

	unresolved int
	cycles     int
}

func newResolver(idx index.Index, cfg Config, logger *slog.Logger) *resolver {
	return &resolver{
		idx:       idx,
		cfg:       cfg,
		logger:    logger,
		ancestors: map[types.ResourceID]struct{}{},
	}
}

func (r *resolver) denormalize(primary types.Multiple[resources.Resource]) (types.Multiple[*Node], error) {
	return types.TryMap(primary, r.resolveOne)
}

func (r *resolver) guarded() bool {
	return r.cfg.CyclePolicy != CyclePolicyUnguarded
}

func (r *resolver) resolveOne(res resources.Resource) (*Node, error) {
	rid := res.Identifier()

	if r.guarded() {
		r.ancestors[rid] = struct{}{}
		defer delete(r.ancestors, rid)
	}

	relations := make(map[string]types.Multiple[*Node], len(res.Relationships))

	for _, name := range slices.Sorted(maps.Keys(res.Relationships)) {
		resolved, err := types.TryMap(res.Relationships[name].Data, func(target types.ResourceID) (*Node, error) {
			return r.follow(rid, name, target)
		})
		if err != nil {
			return nil, err
		}

		relations[name] = resolved
	}

	return newNode(res.Attributes, res.ID, relations), nil
}

// follow resolves a single reference from the resource source. A nil node without an
// error means the reference could not be resolved.
func (r *resolver) follow(source types.ResourceID, relationship string, target types.ResourceID) (*Node, error) {
	related, found := r.idx.Lookup(target)
	if !found {
		r.unresolved++
		r.logger.Debug("relationship not found among included resources",
			slog.String("resource", source.String()),
			slog.String("relationship", relationship),
			slog.String("target", target.String()))
		return nil, nil
	}

	if r.guarded() {
		if _, isAncestor := r.ancestors[target]; isAncestor {
			r.cycles++

			if r.cfg.CyclePolicy == CyclePolicyFail {
				return nil, errors.NewCyclicRelationshipError(
					fmt.Sprintf("relationship %s of %s leads back to %s", relationship, source, target),
				)
			}

			r.logger.Debug("cyclic relationship replaced by reference",
				slog.String("resource", source.String()),
				slog.String("relationship", relationship),
				slog.String("target", target.String()))

			return newReference(related.ID), nil
		}
	}

	if r.cfg.MaxDepth > 0 && r.depth >= r.cfg.MaxDepth {
		return nil, errors.NewMaxDepthExceededError(
			fmt.Sprintf("relationship %s of %s is nested deeper than %d levels", relationship, source, r.cfg.MaxDepth),
		)
	}

	r.depth++
	defer func() { r.depth-- }()

	return r.resolveOne(related)
}
