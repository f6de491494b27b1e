// Package asr provides speech-to-text for speaking answers by shelling out to
// a local whisper-cli binary. The blob store supplies the audio bytes.
package asr

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/lingua-prep/linguaprep-backend/internal/storage"
)

type WhisperTranscriber struct {
	Binary  string
	Model   string
	Timeout time.Duration
	Blobs   storage.BlobStore
}

func NewWhisperTranscriber(blobs storage.BlobStore) *WhisperTranscriber {
	return &WhisperTranscriber{
		Binary:  "whisper-cli",
		Model:   "base.en",
		Timeout: 60 * time.Second,
		Blobs:   blobs,
	}
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioRef string) (string, error) {
	if _, err := exec.LookPath(t.Binary); err != nil {
		return "", errors.New(t.Binary + " not found in PATH")
	}

	rc, err := t.Blobs.Get(audioRef)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	f, err := os.CreateTemp("", "speech-*.audio")
	if err != nil {
		return "", err
	}
	defer func() { f.Close(); os.Remove(f.Name()) }()
	if _, err := io.Copy(f, rc); err != nil {
		return "", err
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}
	args := []string{"-f", f.Name(), "--no-timestamps"}
	if t.Model != "" {
		args = append(args, "-m", t.Model)
	}
	cmd := exec.CommandContext(ctx, t.Binary, args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.New(strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
