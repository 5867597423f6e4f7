package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the file at path as text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read log: %w", err)
	}
	return string(data), nil
}

// Tail returns at most maxLines from the end of the file at path, joined with
// newlines. A maxLines of zero or less reads the whole file. Lines of any
// length are kept.
func Tail(path string, maxLines int) (string, error) {
	if maxLines <= 0 {
		return Load(path)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var w window
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			w.push(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), maxLines)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read log: %w", err)
		}
	}
	return strings.Join(w.lines(), "\n"), nil
}

// window keeps the newest lines seen so far. It grows with the input until
// it holds limit lines and then overwrites the oldest entry in place.
type window struct {
	ring []string
	next int // oldest entry once the ring is full
}

func (w *window) push(line string, limit int) {
	if len(w.ring) < limit {
		w.ring = append(w.ring, line)
		return
	}
	w.ring[w.next] = line
	w.next = (w.next + 1) % len(w.ring)
}

func (w *window) lines() []string {
	out := make([]string, 0, len(w.ring))
	out = append(out, w.ring[w.next:]...)
	return append(out, w.ring[:w.next]...)
}
