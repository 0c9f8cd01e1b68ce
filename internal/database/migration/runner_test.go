package migration

import (
	"strings"
	"testing"
	"testing/fstest"

	"job-board/migrations"
)

func TestLoadMigrations_SortsAndFilters(t *testing.T) {
	src := fstest.MapFS{
		"V2__jobs.sql":   {Data: []byte("CREATE TABLE jobs (id INT);")},
		"V1__users.sql":  {Data: []byte("CREATE TABLE users (id INT);")},
		"README.md":      {Data: []byte("ignored")},
		"V3_missing.sql": {Data: []byte("ignored: bad name")},
	}

	migs, err := loadMigrations(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "users" {
		t.Fatalf("unexpected first migration: %+v", migs[0])
	}
	if migs[1].Version != 2 || migs[1].Name != "jobs" {
		t.Fatalf("unexpected second migration: %+v", migs[1])
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct checksums")
	}
}

func TestLoadMigrations_RejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}

	_, err = loadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	if err == nil || !strings.Contains(err.Error(), "empty migration file") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestEmbeddedMigrations_Load(t *testing.T) {
	migs, err := loadMigrations(migrations.FS)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	if !strings.Contains(migs[0].SQL, "UNIQUE (job_id, seeker_id)") {
		t.Fatalf("expected initial schema to carry the application uniqueness constraint")
	}
}

func TestRunner_SourcePrefersExistingDir(t *testing.T) {
	dir := t.TempDir()
	r := Runner{Dir: dir, FS: migrations.FS}
	src, err := r.source()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	migs, err := loadMigrations(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected empty temp dir to win over embedded FS, got %d", len(migs))
	}

	r = Runner{Dir: dir + "/missing", FS: migrations.FS}
	src, err = r.source()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if src == nil {
		t.Fatalf("expected fallback to embedded FS")
	}
}
