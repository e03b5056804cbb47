package model

// Restriction narrows which assets participate in a weighting or price-series
// query. A nil field means no constraint on that dimension; a nil *Restriction
// means no filtering at all. The optional fields are explicit pointers so that
// "absent" can never be confused with an asset whose own field happens to
// equal some default value.
type Restriction struct {
	AssetClass *string
	Sector     *string
}

// Matches reports whether the asset passes the restriction. A nil receiver
// matches every asset.
func (r *Restriction) Matches(a *Asset) bool {
	if r == nil {
		return true
	}
	if r.AssetClass != nil && a.AssetClass != *r.AssetClass {
		return false
	}
	if r.Sector != nil && a.Sector != *r.Sector {
		return false
	}
	return true
}

// String renders the restriction for display, e.g. "Equities / Energy".
func (r *Restriction) String() string {
	if r == nil {
		return "All"
	}
	class, sector := "All", "All"
	if r.AssetClass != nil {
		class = *r.AssetClass
	}
	if r.Sector != nil {
		sector = *r.Sector
	}
	return class + " / " + sector
}
