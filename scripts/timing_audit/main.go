// Command timing_audit scans stored content documents for timing arrays that
// drifted from their detected line counts and optionally repairs them in
// place. Drift accumulates when documents are written by older tooling that
// did not reconcile timings on save.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/noah-isme/lms-content-api/internal/editor"
	"github.com/noah-isme/lms-content-api/internal/models"
	"github.com/noah-isme/lms-content-api/internal/repository"
	"github.com/noah-isme/lms-content-api/pkg/config"
	"github.com/noah-isme/lms-content-api/pkg/database"
)

type drift struct {
	ContentID   string
	Title       string
	LessonIndex int
	SubIndex    int
	Lines       int
	Timings     int
}

func main() {
	var (
		fix      bool
		topicID  string
		pageSize int
		timeout  time.Duration
	)

	flag.BoolVar(&fix, "fix", false, "reconcile drifted timing arrays and persist the repaired documents")
	flag.StringVar(&topicID, "topic", "", "restrict the audit to one topic")
	flag.IntVar(&pageSize, "page-size", 100, "documents fetched per page")
	flag.DurationVar(&timeout, "timeout", 5*time.Minute, "overall audit timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	repo := repository.NewContentRepository(db)

	var (
		drifts   []drift
		scanned  int
		repaired int
	)

	for page := 1; ; page++ {
		docs, total, err := repo.List(ctx, models.ContentFilter{TopicID: topicID, Page: page, PageSize: pageSize})
		if err != nil {
			log.Fatalf("failed to list contents: %v", err)
		}
		if len(docs) == 0 {
			break
		}

		for i := range docs {
			doc := &docs[i]
			scanned++
			found := auditDocument(doc)
			if len(found) == 0 {
				continue
			}
			drifts = append(drifts, found...)

			if fix {
				editor.NormalizeDocument(doc)
				if err := repo.Update(ctx, doc); err != nil {
					log.Fatalf("failed to repair content %s: %v", doc.ID, err)
				}
				repaired++
			}
		}

		if scanned >= total {
			break
		}
	}

	printReport(drifts, scanned, repaired)
	if len(drifts) > 0 && !fix {
		os.Exit(1)
	}
}

// auditDocument reports every sub-heading whose timing array length does not
// match its detected line count. The document is not mutated.
func auditDocument(doc *models.ContentDocument) []drift {
	var found []drift
	for li, lesson := range doc.Lessons {
		for si, sub := range lesson.SubHeadings {
			lines := len(editor.DetectLines(sub.Text))
			if len(sub.TimingArray) == lines {
				continue
			}
			found = append(found, drift{
				ContentID:   doc.ID,
				Title:       doc.Title,
				LessonIndex: li,
				SubIndex:    si,
				Lines:       lines,
				Timings:     len(sub.TimingArray),
			})
		}
	}
	return found
}

func printReport(drifts []drift, scanned, repaired int) {
	fmt.Println("Timing Audit Report")
	fmt.Println("===================")
	for _, d := range drifts {
		fmt.Printf("[DRIFT] %s (%s) lesson %d sub-heading %d: %d lines, %d timings\n",
			d.ContentID, d.Title, d.LessonIndex, d.SubIndex, d.Lines, d.Timings)
	}
	fmt.Printf("Scanned: %d, Drifted sub-headings: %d, Repaired documents: %d\n", scanned, len(drifts), repaired)
}
