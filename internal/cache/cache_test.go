package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"censusboard/domain/census"
)

func tempExtract(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extract.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func countingLoader(calls *int, table census.Table) LoadFunc {
	return func() (census.Table, error) {
		*calls++
		return table, nil
	}
}

func TestGetOrLoadMemoizes(t *testing.T) {
	path := tempExtract(t, "v1")
	table := census.NewTable([]census.Row{{Region: "서울특별시", Total: 10}})

	c := New(0)
	calls := 0
	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(path, countingLoader(&calls, table))
		if err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
		if got.Len() != 1 {
			t.Fatalf("load %d returned %d rows", i, got.Len())
		}
	}

	if calls != 1 {
		t.Errorf("unchanged file must load once, loaded %d times", calls)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 cached entry, got %d", c.Len())
	}
}

func TestGetOrLoadReloadsOnFileChange(t *testing.T) {
	path := tempExtract(t, "v1")
	c := New(0)
	calls := 0
	load := countingLoader(&calls, census.Table{})

	if _, err := c.GetOrLoad(path, load); err != nil {
		t.Fatalf("first load failed: %v", err)
	}

	// Replace the file; mtime alone can be too coarse on fast
	// filesystems, so move it backwards explicitly.
	if err := os.WriteFile(path, []byte("v2 longer"), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	if _, err := c.GetOrLoad(path, load); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("changed file must reload, loaded %d times", calls)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	path := tempExtract(t, "v1")
	c := New(0)
	calls := 0
	load := countingLoader(&calls, census.Table{})

	if _, err := c.GetOrLoad(path, load); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	c.Invalidate(path)
	if _, err := c.GetOrLoad(path, load); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("invalidate must force a reload, loaded %d times", calls)
	}
}

func TestInvalidateAll(t *testing.T) {
	c := New(0)
	paths := []string{tempExtract(t, "a"), tempExtract(t, "b")}
	for _, p := range paths {
		calls := 0
		if _, err := c.GetOrLoad(p, countingLoader(&calls, census.Table{})); err != nil {
			t.Fatalf("load failed: %v", err)
		}
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.InvalidateAll()
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestLoadErrorIsNotCached(t *testing.T) {
	path := tempExtract(t, "v1")
	c := New(0)

	calls := 0
	failing := func() (census.Table, error) {
		calls++
		if calls == 1 {
			return census.Table{}, errors.New("decode failed")
		}
		return census.Table{}, nil
	}

	if _, err := c.GetOrLoad(path, failing); err == nil {
		t.Fatal("expected first load to fail")
	}
	if c.Len() != 0 {
		t.Fatalf("failed load must not populate the cache, got %d entries", c.Len())
	}
	if _, err := c.GetOrLoad(path, failing); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 load attempts, got %d", calls)
	}
}

func TestTTLExpiry(t *testing.T) {
	path := tempExtract(t, "v1")
	c := New(10 * time.Millisecond)
	calls := 0
	load := countingLoader(&calls, census.Table{})

	if _, err := c.GetOrLoad(path, load); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, err := c.GetOrLoad(path, load); err != nil {
		t.Fatalf("second load failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("expired entry must reload, loaded %d times", calls)
	}
}

func TestConcurrentMissesCollapse(t *testing.T) {
	path := tempExtract(t, "v1")
	c := New(0)

	var mu sync.Mutex
	calls := 0
	slow := func() (census.Table, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		return census.Table{}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetOrLoad(path, slow); err != nil {
				t.Errorf("concurrent load failed: %v", err)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("concurrent misses must collapse into one load, got %d", calls)
	}
}
