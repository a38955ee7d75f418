package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"leettrack/internal/domain/model"
)

func testProblem(id int, slug, title string, difficulty model.Difficulty, tags ...string) model.Problem {
	return model.Problem{
		ID:         id,
		Slug:       slug,
		Title:      title,
		Difficulty: difficulty,
		Tags:       tags,
		Link:       "https://leetcode.com/problems/" + slug + "/",
	}
}

func TestAddThenContains(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	inserted, err := idx.Add(testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy, "Array"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !inserted {
		t.Fatal("expected insertion")
	}

	if !idx.Contains("1") {
		t.Error("Contains by id = false, want true")
	}
	if !idx.Contains("two-sum") {
		t.Error("Contains by slug = false, want true")
	}
	if idx.Contains("3") || idx.Contains("three-sum") {
		t.Error("Contains reported an absent problem")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	first := testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy)
	if _, err := idx.Add(first); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tests := []struct {
		name    string
		problem model.Problem
	}{
		{"same id", testProblem(1, "other-slug", "Other", model.DifficultyHard)},
		{"same slug", testProblem(99, "two-sum", "Other", model.DifficultyHard)},
		{"same record", first},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inserted, err := idx.Add(tt.problem)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if inserted {
				t.Error("duplicate add reported insertion")
			}
			if got := len(idx.All()); got != 1 {
				t.Errorf("cardinality = %d, want 1", got)
			}
		})
	}

	// The original record must survive untouched.
	got, ok := idx.Get(1)
	if !ok || got.Title != "Two Sum" {
		t.Errorf("Get(1) = %+v, want original Two Sum record", got)
	}
}

func TestAllSortedByID(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, p := range []model.Problem{
		testProblem(15, "3sum", "3Sum", model.DifficultyMedium),
		testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy),
		testProblem(200, "number-of-islands", "Number of Islands", model.DifficultyMedium),
		testProblem(5, "longest-palindromic-substring", "Longest Palindromic Substring", model.DifficultyMedium),
	} {
		if _, err := idx.Add(p); err != nil {
			t.Fatalf("Add(%d): %v", p.ID, err)
		}
	}

	all := idx.All()
	want := []int{1, 5, 15, 200}
	if len(all) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("All()[%d].ID = %d, want %d", i, all[i].ID, id)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	idx, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p := testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy, "Array", "Hash Table")
	p.Filename = "p0001_two_sum.go"
	if _, err := idx.Add(p); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, ok := reloaded.Get(1)
	if !ok {
		t.Fatal("reloaded index lost problem 1")
	}
	if got.Slug != "two-sum" || got.Filename != "p0001_two_sum.go" || len(got.Tags) != 2 {
		t.Errorf("reloaded record mismatch: %+v", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, model.ErrCorruptIndex) {
		t.Fatalf("Load corrupt file err = %v, want ErrCorruptIndex", err)
	}
}

func TestLoadDuplicateEntriesIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	doc := `[{"id":1,"slug":"two-sum","title":"Two Sum","difficulty":"Easy","tags":[],"description":"","link":""},
{"id":1,"slug":"other","title":"Other","difficulty":"Hard","tags":[],"description":"","link":""}]`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, model.ErrCorruptIndex) {
		t.Fatalf("Load duplicate ids err = %v, want ErrCorruptIndex", err)
	}
}

func TestSearchTitle(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, p := range []model.Problem{
		testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy),
		testProblem(15, "3sum", "3Sum", model.DifficultyMedium),
		testProblem(206, "reverse-linked-list", "Reverse Linked List", model.DifficultyEasy),
	} {
		if _, err := idx.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	tests := []struct {
		keyword string
		wantIDs []int
	}{
		{"sum", []int{1, 15}},
		{"SUM", []int{1, 15}},
		{"linked", []int{206}},
		{"graph", nil},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got := idx.SearchTitle(tt.keyword)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("SearchTitle(%q) returned %d results, want %d", tt.keyword, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchTagExactMatch(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, p := range []model.Problem{
		testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy, "Array", "Hash Table"),
		testProblem(15, "3sum", "3Sum", model.DifficultyMedium, "Array", "Two Pointers"),
		testProblem(206, "reverse-linked-list", "Reverse Linked List", model.DifficultyEasy, "Linked List"),
	} {
		if _, err := idx.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	tests := []struct {
		tag     string
		wantIDs []int
	}{
		{"Array", []int{1, 15}},
		{"array", []int{1, 15}},
		{"HASH TABLE", []int{1}},
		// Substring of a tag must not match.
		{"Arr", nil},
		{"Hash", nil},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := idx.SearchTag(tt.tag)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("SearchTag(%q) returned %d results, want %d", tt.tag, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestStats(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, p := range []model.Problem{
		testProblem(1, "two-sum", "Two Sum", model.DifficultyEasy, "Array", "Hash Table"),
		testProblem(9, "palindrome-number", "Palindrome Number", model.DifficultyEasy, "Math"),
		testProblem(15, "3sum", "3Sum", model.DifficultyMedium, "Array"),
		testProblem(5, "longest-palindromic-substring", "Longest Palindromic Substring", model.DifficultyMedium, "String"),
	} {
		if _, err := idx.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	stats := idx.Stats()
	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if got := stats.ByDifficulty[model.DifficultyEasy]; got != 2 {
		t.Errorf("ByDifficulty[Easy] = %d, want 2", got)
	}
	if got := stats.ByDifficulty[model.DifficultyMedium]; got != 2 {
		t.Errorf("ByDifficulty[Medium] = %d, want 2", got)
	}
	if got := stats.ByDifficulty[model.DifficultyHard]; got != 0 {
		t.Errorf("ByDifficulty[Hard] = %d, want 0", got)
	}

	if len(stats.TopTags) == 0 || stats.TopTags[0].Tag != "Array" || stats.TopTags[0].Count != 2 {
		t.Errorf("TopTags[0] = %+v, want Array x2", stats.TopTags)
	}
}

func TestStatsTopTagsCapped(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tags := []string{"t01", "t02", "t03", "t04", "t05", "t06", "t07", "t08", "t09", "t10", "t11", "t12"}
	for i, tag := range tags {
		p := testProblem(i+1, "slug-"+tag, "Problem "+tag, model.DifficultyEasy, tag)
		if _, err := idx.Add(p); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	stats := idx.Stats()
	if len(stats.TopTags) != 10 {
		t.Errorf("len(TopTags) = %d, want 10", len(stats.TopTags))
	}
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	idx, err := Load(filepath.Join(t.TempDir(), "does", "not", "exist", "index.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(idx.All()); got != 0 {
		t.Errorf("fresh index has %d entries, want 0", got)
	}
}
