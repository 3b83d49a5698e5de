package suggest

import (
	"strings"
	"unicode"

	"github.com/focoteam/foco-backend/internal/domain"
)

// Curated per-role vocabulary tables. These drive specialty autocomplete
// and the filter pickers in the client; they are deployment-time
// configuration, independent of live profile data.
var roleSpecialties = map[domain.Role][]string{
	domain.RolePhotographer: {
		"retrato", "moda", "editorial", "producto", "bodas",
		"eventos", "belleza", "arquitectura", "documental",
	},
	domain.RoleModel: {
		"moda", "comercial", "pasarela", "fitness",
		"glamour", "alternativo", "catalogo",
	},
	domain.RoleMakeupArtist: {
		"belleza", "moda", "editorial", "caracterizacion",
		"novias", "efectos especiales",
	},
	domain.RoleStylist: {
		"moda", "editorial", "comercial", "vestuario", "personal shopper",
	},
	domain.RoleProducer: {
		"moda", "publicidad", "editorial", "videoclips", "cine", "television",
	},
}

// ExperienceLevels is the closed experience vocabulary shared by the roles
// that carry an experience field.
var ExperienceLevels = []string{"principiante", "intermedio", "avanzado", "experto"}

// BudgetRanges is the producer budget vocabulary, in euros per production.
var BudgetRanges = []string{"0-1000", "1000-5000", "5000-20000", "20000+"}

// SpecialtiesForRole returns the curated list for one role.
func SpecialtiesForRole(role domain.Role) []string {
	return roleSpecialties[role]
}

// allSpecialties flattens the role tables into one deduplicated candidate
// list, preserving role declaration order then list order. Tokens shared
// across roles ("moda" lives in all five) appear exactly once.
func allSpecialties() []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, role := range domain.Roles {
		for _, token := range roleSpecialties[role] {
			key := strings.ToLower(token)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// titleCase upper-cases the first rune of every word for display labels,
// e.g. "efectos especiales" -> "Efectos Especiales".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
