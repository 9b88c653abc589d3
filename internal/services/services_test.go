package services

import (
	"path/filepath"
	"testing"
	"valhalla/internal/db"
	"valhalla/internal/utils"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if err := db.InitWithDSN("sqlite:" + filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("InitWithDSN failed: %v", err)
	}
	utils.GetCache().Purge()
}
