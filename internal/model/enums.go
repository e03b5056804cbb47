package model

// AssetClasses is the closed set of accepted asset classes.
var AssetClasses = []string{
	"Equities",
	"Fixed Income",
	"Cash & Cash Equivalents",
	"Commodities",
	"Real Estate",
	"Derivatives",
	"Private Equity",
	"Hedge Funds",
	"Digital Assets",
	"Other",
}

// Sectors is the closed set of accepted sectors (GICS-style plus Other).
var Sectors = []string{
	"Energy",
	"Materials",
	"Industrials",
	"Consumer Discretionary",
	"Consumer Staples",
	"Health Care",
	"Financials",
	"Information Technology",
	"Communication Services",
	"Utilities",
	"Real Estate",
	"Other",
}

// ValidAssetClass reports whether s is one of the accepted asset classes.
func ValidAssetClass(s string) bool { return contains(AssetClasses, s) }

// ValidSector reports whether s is one of the accepted sectors.
func ValidSector(s string) bool { return contains(Sectors, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
