package catalog

import "strings"

// Match is a successful catalog resolution together with the strategy that
// produced it.
type Match struct {
	Film     Film
	Key      string
	Strategy string
}

// Strategy names reported in Match and in diagnostic output.
const (
	StrategyExact     = "exact"
	StrategySubstring = "substring"
)

type strategyFunc func(c *Catalog, key string) (Match, bool)

// matchStrategies are tried in order; the first hit wins. Order encodes
// precedence: an exact key match always beats a substring containment.
var matchStrategies = []struct {
	name string
	fn   strategyFunc
}{
	{StrategyExact, matchExact},
	{StrategySubstring, matchSubstring},
}

// Resolve matches a raw screening title against the catalog. It returns the
// best match or ok=false when no strategy succeeds. Total for any string
// input; an empty title never matches.
func Resolve(c *Catalog, title string) (Match, bool) {
	key := NormalizeTitle(title)
	if key == "" {
		return Match{}, false
	}
	for _, strategy := range matchStrategies {
		if match, ok := strategy.fn(c, key); ok {
			match.Strategy = strategy.name
			return match, true
		}
	}
	return Match{}, false
}

func matchExact(c *Catalog, key string) (Match, bool) {
	film, ok := c.lookup(key)
	if !ok {
		return Match{}, false
	}
	return Match{Film: film, Key: key}, true
}

// matchSubstring accepts containment in either direction: an OCR title with
// a missing subtitle is a substring of the catalog key, while one with a
// bolted-on suffix ("... (RESTORED)") contains it. Among all candidates the
// longest catalog key wins, ties broken lexicographically, so the outcome
// does not depend on catalog iteration order.
func matchSubstring(c *Catalog, key string) (Match, bool) {
	if c == nil {
		return Match{}, false
	}
	best := -1
	bestKey := ""
	for candidateKey, idx := range c.byKey {
		if !strings.Contains(candidateKey, key) && !strings.Contains(key, candidateKey) {
			continue
		}
		if best >= 0 {
			if len(candidateKey) < len(bestKey) {
				continue
			}
			if len(candidateKey) == len(bestKey) && candidateKey > bestKey {
				continue
			}
		}
		best = idx
		bestKey = candidateKey
	}
	if best < 0 {
		return Match{}, false
	}
	return Match{Film: c.films[best], Key: bestKey}, true
}
