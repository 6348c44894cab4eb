package data

import "testing"

func TestDictionaryRankIsOneIndexed(t *testing.T) {
	rank, ok := Passwords.Lookup("password")
	if !ok {
		t.Fatal("expected \"password\" in Passwords")
	}
	if rank != 1 {
		t.Errorf("rank = %d, want 1", rank)
	}
}

func TestDictionariesAreDisjoint(t *testing.T) {
	seen := make(map[string]string)
	for _, d := range Dictionaries {
		for w := range d.Rank {
			if owner, ok := seen[w]; ok {
				t.Errorf("word %q appears in both %q and %q", w, owner, d.Name)
			}
			seen[w] = d.Name
		}
	}
}

func TestDictionaryRanksAreDense(t *testing.T) {
	for _, d := range Dictionaries {
		max := 0
		for _, r := range d.Rank {
			if r > max {
				max = r
			}
		}
		if max != len(d.Rank) {
			t.Errorf("%s: max rank %d != count %d (ranks must stay 1..N after truncation)", d.Name, max, len(d.Rank))
		}
	}
}

func TestLeetSubstitutionsCoverEverySymbol(t *testing.T) {
	for letter, symbols := range Leet {
		for _, sym := range symbols {
			letters := LeetSubstitutions[sym]
			found := false
			for _, l := range letters {
				if l == letter {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("LeetSubstitutions[%q] missing %q", sym, letter)
			}
		}
	}
}

func TestKeyboardGraphIsSymmetric(t *testing.T) {
	for _, g := range Graphs {
		for k, neighbors := range g.Adjacency {
			for _, n := range neighbors {
				reciprocal := false
				for _, back := range g.Adjacency[n] {
					if back == k {
						reciprocal = true
						break
					}
				}
				if !reciprocal {
					t.Errorf("%s: %q -> %q not reciprocated", g.Name, k, n)
				}
			}
		}
	}
}

func TestQwertyRowIsConnected(t *testing.T) {
	neighbors := Qwerty.Adjacency['w']
	wantAdjacent := []rune{'q', 'e'}
	for _, want := range wantAdjacent {
		found := false
		for _, n := range neighbors {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("'w' missing expected neighbor %q, got %v", want, neighbors)
		}
	}
}
