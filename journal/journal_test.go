package journal

import (
	"path/filepath"
	"testing"
	"time"

	"spscring/soak"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTemp(t)
	clock := time.Unix(1700000000, 0)
	j.now = func() time.Time { return clock }

	strict, err := soak.Run(soak.Config{Mode: soak.ModeStrict, Slots: 8, Items: 500})
	if err != nil {
		t.Fatal(err)
	}
	over, err := soak.Run(soak.Config{Mode: soak.ModeOverwrite, Slots: 4, Items: 10, Burst: 5})
	if err != nil {
		t.Fatal(err)
	}

	id1, err := j.Record(strict)
	if err != nil {
		t.Fatal(err)
	}
	clock = clock.Add(time.Second)
	id2, err := j.Record(over)
	if err != nil {
		t.Fatal(err)
	}
	if id2 <= id1 {
		t.Fatalf("ids not increasing: %d then %d", id1, id2)
	}

	got, err := j.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(got))
	}

	newest, oldest := got[0], got[1]
	if newest.ID != id2 || oldest.ID != id1 {
		t.Fatalf("order = (%d,%d), want (%d,%d)", newest.ID, oldest.ID, id2, id1)
	}
	if !oldest.Intact || newest.Intact {
		t.Fatalf("intact flags = (%v,%v), want (true,false)", oldest.Intact, newest.Intact)
	}
	if !oldest.RecordedAt.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("RecordedAt = %v", oldest.RecordedAt)
	}
	if oldest.Result != strict {
		t.Fatalf("strict round trip:\n got %+v\nwant %+v", oldest.Result, strict)
	}
	if newest.Result != over {
		t.Fatalf("overwrite round trip:\n got %+v\nwant %+v", newest.Result, over)
	}
}

func TestRecentHonoursLimit(t *testing.T) {
	j := openTemp(t)
	res, err := soak.Run(soak.Config{Mode: soak.ModeOverwrite, Slots: 4, Items: 3})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := j.Record(res); err != nil {
			t.Fatal(err)
		}
	}
	got, err := j.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent(3) returned %d entries", len(got))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	for i := 0; i < 2; i++ {
		j, err := Open(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		j.Close()
	}
}
