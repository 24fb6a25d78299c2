package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/poiesic/carelog/core"
)

var clients = []string{
	"Margaret Ellison",
	"Thomas Whitfield",
	"Doris Achebe",
	"Harold Brennan",
	"Edith Kowalski",
	"Samuel Osei",
	"Vera Lindqvist",
	"Arthur Pemberton",
	"Rosa Delgado",
	"Frank Okonkwo",
	"Lillian Marsh",
	"George Tanaka",
}

var carePros = []string{
	"Amara Johnson",
	"Priya Nair",
	"Callum Reid",
	"Sofia Mendes",
	"Daniel Kim",
	"Nkechi Eze",
	"Ewa Nowak",
	"Liam O'Sullivan",
}

var greenNotes = []string{
	"Routine visit. Client was in good spirits, ate a full breakfast and took all medications on schedule.",
	"All well today. We did some light stretching exercises and watched the morning news together.",
	"Client slept well and reported no pain. Prepared lunch and tidied the kitchen before leaving.",
	"Pleasant visit. Client's daughter was present and we discussed the week's shopping list.",
	"Medications taken as prescribed. Client walked to the garden and back without assistance.",
	"Client enjoyed a bath and hair wash. Skin looks healthy, no areas of concern.",
	"Quiet afternoon. Client did a crossword while I prepared the evening meal.",
	"Nothing to report. Client cheerful, appetite good, home warm and tidy.",
}

var amberNotes = []string{
	"Client seemed more tired than usual and ate only half of lunch. Will mention to the family.",
	"Noticed slight swelling in the left ankle. Client says it does not hurt but worth monitoring.",
	"Client was a little confused about the day of the week this morning, which is new.",
	"Appetite reduced for the third visit running. Encouraged fluids and left snacks within reach.",
	"Client reported feeling dizzy when standing up quickly. Advised to rise slowly and rest.",
	"Small bruise on the right forearm, client cannot recall how it happened.",
	"Client low in mood today and declined the walk we usually take. Stayed and chatted instead.",
	"The medication blister pack had yesterday evening's dose still in it. Client says she forgot.",
}

var redNotes = []string{
	"Client fell in the bathroom this morning. No obvious injury but she is shaken and refusing food.",
	"Found the front door wide open on arrival and client very confused, did not recognise me at first.",
	"Client complained of chest tightness during the visit. Advised family to call the GP immediately.",
	"Client has a deep skin tear on the left shin that looks infected. Needs nursing attention today.",
	"Client was on the floor when I arrived, says she had been there since last night. Called 111.",
	"Severe shortness of breath while walking to the kitchen. This is much worse than last week.",
	"Client has not taken any medication for two days and is refusing to eat or drink.",
	"New onset of slurred speech noticed during conversation. Family contacted urgently.",
}

var (
	outDir    = flag.String("out", "./store/uploads", "directory to write batch files into")
	batches   = flag.Int("batches", 3, "number of batch files to generate")
	records   = flag.Int("records", 12, "records per batch")
	emptyRate = flag.Float64("empty-rate", 0.1, "fraction of records with an empty note")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// randomNote picks a note weighted toward routine visits.
func randomNote(rng *rand.Rand) string {
	roll := rng.Float64()
	switch {
	case roll < 0.6:
		return greenNotes[rng.Intn(len(greenNotes))]
	case roll < 0.9:
		return amberNotes[rng.Intn(len(amberNotes))]
	default:
		return redNotes[rng.Intn(len(redNotes))]
	}
}

// generateBatch builds one batch of visit records spread over the past week.
func generateBatch(rng *rand.Rand, count int) []core.VisitRecord {
	out := make([]core.VisitRecord, 0, count)
	for i := 0; i < count; i++ {
		record := core.VisitRecord{
			Client:    clients[rng.Intn(len(clients))],
			CarePro:   carePros[rng.Intn(len(carePros))],
			VisitDate: time.Now().AddDate(0, 0, -rng.Intn(7)).Format("2006-01-02"),
		}
		if rng.Float64() >= *emptyRate {
			record.Note = randomNote(rng)
		}
		out = append(out, record)
	}
	return out
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	for i := 0; i < *batches; i++ {
		batch := generateBatch(rng, *records)

		content, err := json.MarshalIndent(batch, "", "  ")
		if err != nil {
			panic(err)
		}

		name := fmt.Sprintf("visits-%s.json", uuid.NewString())
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			panic(err)
		}

		slog.Info("wrote batch file", "path", path, "records", len(batch))
	}
}
