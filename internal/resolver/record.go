package resolver

import (
	"context"

	"github.com/nickjlamb/HushMap-sub001/internal/format"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// ResolveRecord resolves a stored record's label fields in place. Records
// whose resolution only produced the synthetic placeholder are left untouched
// so a later pass can retry them; the placeholder must never be persisted.
func (r *Resolver) ResolveRecord(ctx context.Context, rec *types.Record) {
	result := r.Resolve(ctx, rec.Coords(), Options{AreaOnly: rec.AreaOnly})
	if format.IsSynthetic(result.DisplayName) {
		return
	}

	now := r.now()
	rec.DisplayName = result.DisplayName
	rec.Tier = result.Tier
	rec.Confidence = result.Confidence
	rec.PlaceID = result.PlaceID
	rec.RulesVersion = types.RulesVersion
	rec.ResolvedAt = &now
}
