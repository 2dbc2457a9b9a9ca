//go:build strict_taxonomy

package taxonomy

// strictAllow is the explicit namespace→categories table. Pairs absent
// from the table are rejected.
var strictAllow = map[*Namespace][]Category{
	Core:        {CatSystem},
	Config:      {CatConfiguration},
	Correlation: {CatAnalysis},
	Response:    {CatResponse},
	Platform:    {CatSystem, CatIO},
}

// Strict mode: formerly permissive namespaces enforce their table entry.
func fallbackPermits(ns *Namespace, c Category) bool {
	for _, allowed := range strictAllow[ns] {
		if allowed == c {
			return true
		}
	}
	return false
}
