// internal/app/system/workers/foldercounts_test.go
package workers_test

import (
	"testing"
	"time"

	emailstore "github.com/pulseboard/pulseboard/internal/app/store/email"
	"github.com/pulseboard/pulseboard/internal/app/system/workers"
	"github.com/pulseboard/pulseboard/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestFolderCounts_RefreshesInBackground(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateEmail(ctx, "a", false, true)
	f.CreateEmail(ctx, "b", false, false)
	f.CreateFolder(ctx, "Inbox", 0)
	f.CreateFolder(ctx, "Unread", 0)

	s := emailstore.New(db)
	w := workers.NewFolderCounts(s, zap.NewNop(), 20*time.Millisecond)
	w.Start()
	defer w.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for {
		folders, err := s.Folders.Find(ctx, bson.M{"name": "Inbox"}, nil, 0)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if len(folders) == 1 && folders[0].Count == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("worker never refreshed counts: %+v", folders)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestFolderCounts_StopBlocksUntilDone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := emailstore.New(db)

	w := workers.NewFolderCounts(s, zap.NewNop(), 10*time.Millisecond)
	w.Start()
	time.Sleep(30 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
