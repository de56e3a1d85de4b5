/*
DESCRIPTION
  av1probe is a program that extracts the AV1 codec configuration record
  from files in a directory, logging the result for each file it sees.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package av1probe is a bare bones program for extracting and logging an
// AV1 codec configuration record from OBU elementary stream files, either a
// single file given by -in, or every .obu file created or written in a
// directory given by -watch.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ausocean/utils/logging"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/av1mux/codec/av1"
	"github.com/ausocean/av1mux/codec/av1/av1dec"
)

// Logging related constants.
const (
	logPath      = "/var/log/av1probe/av1probe.log"
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

func main() {
	inPtr := flag.String("in", "", "Path to a single AV1 elementary stream file to probe.")
	watchPtr := flag.String("watch", "", "Directory to watch for new AV1 elementary stream files.")
	logPtr := flag.String("log", logPath, "Path to write the log file to.")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   *logPtr,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)

	switch {
	case *inPtr != "":
		probeFile(l, *inPtr)
	case *watchPtr != "":
		if err := watchDir(l, *watchPtr); err != nil {
			l.Fatal("watch failed", "error", err.Error())
		}
	default:
		l.Fatal("one of -in or -watch must be given")
	}
}

// watchDir watches dir for create and write events on .obu files and probes
// each such file in turn. Watcher errors are logged and the watch goes on;
// it returns only if the watcher cannot be set up or its channels close.
func watchDir(l logging.Logger, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	l.Info("watching directory for new files", "dir", dir)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if filepath.Ext(ev.Name) != ".obu" {
				continue
			}
			probeFile(l, ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.Error("watcher error", "error", err.Error())
		}
	}
}

// probeFile reads the file at path, extracts its AV1 codec configuration
// record, splits it into per-temporal-unit packets, and assembles and logs
// a sample from each. Errors are logged, not fatal, so a single malformed
// file doesn't bring down a directory watch.
func probeFile(l logging.Logger, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.Error("could not read file", "path", path, "error", err.Error())
		return
	}

	cfg, err := av1dec.ParseSeqHeader(av1dec.SliceSource(data), len(data), 0)
	if err != nil {
		l.Error("could not parse sequence header", "path", path, "error", err.Error())
		return
	}
	if cfg == nil {
		l.Warning("no sequence header found", "path", path)
	} else {
		l.Info("sequence header found",
			"path", path,
			"seq_profile", cfg.SeqProfile,
			"seq_level_idx_0", cfg.SeqLevelIdx0,
			"seq_tier_0", cfg.SeqTier0,
			"high_bitdepth", cfg.HighBitdepth,
			"twelve_bit", cfg.TwelveBit,
			"monochrome", cfg.Monochrome,
			"chroma_subsampling_x", cfg.ChromaSubsamplingX,
			"chroma_subsampling_y", cfg.ChromaSubsamplingY,
			"chroma_sample_position", cfg.ChromaSamplePosition,
			"config_obus_len", len(cfg.ConfigOBUs),
		)
	}

	packets, err := av1.SplitPackets(bytes.NewReader(data))
	if err != nil {
		l.Error("could not split obu stream into packets", "path", path, "error", err.Error())
		return
	}

	for i, packet := range packets {
		sample, isSync, err := av1dec.AssembleSample(packet)
		if err != nil {
			l.Error("could not assemble sample", "path", path, "packet", i, "error", err.Error())
			continue
		}
		l.Info("sample assembled",
			"path", path,
			"packet", i,
			"sample_len", len(sample),
			"sync", isSync,
		)
	}
}
