package names

import "sync"

// nicknameTable maps a canonical lowercase first name to its common
// nicknames. The table is curated, not exhaustive; unknown names simply
// fall back to edit-distance scoring.
var nicknameTable = map[string][]string{
	"abigail":     {"abby", "abbie", "gail"},
	"albert":      {"al", "bert", "bertie"},
	"alexander":   {"alex", "al", "sasha", "xander"},
	"alexandra":   {"alex", "sandra", "sasha", "lexi"},
	"andrew":      {"andy", "drew"},
	"anthony":     {"tony", "ant"},
	"barbara":     {"barb", "barbie", "babs"},
	"benjamin":    {"ben", "benny", "benji"},
	"catherine":   {"cathy", "cate", "kate", "katie", "cat"},
	"charles":     {"charlie", "chuck", "chas"},
	"christopher": {"chris", "topher", "kit"},
	"daniel":      {"dan", "danny"},
	"david":       {"dave", "davey"},
	"deborah":     {"deb", "debbie"},
	"donald":      {"don", "donny"},
	"dorothy":     {"dot", "dottie", "dolly"},
	"douglas":     {"doug"},
	"edward":      {"ed", "eddie", "ted", "teddy", "ned"},
	"eleanor":     {"ellie", "nell", "nora"},
	"elizabeth":   {"liz", "lizzie", "beth", "betsy", "betty", "eliza"},
	"frances":     {"fran", "frannie"},
	"francis":     {"frank", "fran"},
	"frederick":   {"fred", "freddie"},
	"gerald":      {"gerry", "jerry"},
	"gregory":     {"greg"},
	"henry":       {"hank", "harry", "hal"},
	"jacqueline":  {"jackie"},
	"james":       {"jim", "jimmy", "jamie"},
	"jennifer":    {"jen", "jenny"},
	"jessica":     {"jess", "jessie"},
	"john":        {"jack", "johnny", "jon"},
	"jonathan":    {"jon", "jonny", "nathan"},
	"joseph":      {"joe", "joey"},
	"joshua":      {"josh"},
	"katherine":   {"kate", "katie", "kathy", "kat", "kitty"},
	"kenneth":     {"ken", "kenny"},
	"lawrence":    {"larry", "laurie"},
	"leonard":     {"leo", "len", "lenny"},
	"margaret":    {"maggie", "meg", "peggy", "marge", "greta"},
	"matthew":     {"matt", "matty"},
	"michael":     {"mike", "mikey", "mick"},
	"nicholas":    {"nick", "nicky"},
	"pamela":      {"pam"},
	"patricia":    {"pat", "patty", "tricia", "trish"},
	"patrick":     {"pat", "paddy", "rick"},
	"peter":       {"pete"},
	"philip":      {"phil"},
	"raymond":     {"ray"},
	"rebecca":     {"becky", "becca"},
	"richard":     {"rick", "ricky", "dick", "rich", "richie"},
	"robert":      {"bob", "bobby", "rob", "robbie", "bert"},
	"ronald":      {"ron", "ronnie"},
	"samuel":      {"sam", "sammy"},
	"sandra":      {"sandy"},
	"stephen":     {"steve", "stevie"},
	"steven":      {"steve", "stevie"},
	"susan":       {"sue", "susie", "suzy"},
	"theodore":    {"ted", "teddy", "theo"},
	"thomas":      {"tom", "tommy"},
	"timothy":     {"tim", "timmy"},
	"victoria":    {"vicky", "tori"},
	"vincent":     {"vince", "vinny"},
	"william":     {"will", "bill", "billy", "willy", "liam"},
	"zachary":     {"zach", "zack"},
}

var (
	reverseOnce   sync.Once
	reverseLookup map[string][]string
)

// reverseTable returns the derived nickname -> canonical names index.
// Built once on first use and read-only afterward.
func reverseTable() map[string][]string {
	reverseOnce.Do(func() {
		reverseLookup = make(map[string][]string, len(nicknameTable)*4)
		for canonical, nicks := range nicknameTable {
			for _, nick := range nicks {
				reverseLookup[nick] = append(reverseLookup[nick], canonical)
			}
		}
	})
	return reverseLookup
}

// Variants returns the closure of a normalized first name under the
// nickname table: the name itself, its listed nicknames, its canonical
// forms, and the other nicknames sharing those canonical forms. The
// result always contains at least the input name.
func Variants(name string) []string {
	seen := map[string]struct{}{name: {}}
	out := []string{name}

	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, nick := range nicknameTable[name] {
		add(nick)
	}
	for _, canonical := range reverseTable()[name] {
		add(canonical)
		for _, sibling := range nicknameTable[canonical] {
			add(sibling)
		}
	}
	return out
}

// Equivalent reports whether two normalized first names are
// interchangeable: equal, one a listed nickname of the other's canonical
// form, or both nicknames of a shared canonical form. The relation is
// symmetric by construction.
func Equivalent(a, b string) bool {
	if a == b {
		return a != ""
	}
	for _, v := range Variants(a) {
		if v == b {
			return true
		}
	}
	return false
}
