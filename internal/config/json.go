// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	Source struct {
		Kind           string   `json:"kind"`
		File           string   `json:"file"`
		SupabaseURL    string   `json:"supabase_url"`
		SupabaseKey    string   `json:"supabase_key"`
		PostgresDSN    string   `json:"postgres_dsn"`
		RequestTimeout Duration `json:"request_timeout"`
		Retries        int      `json:"retries"`
	} `json:"source,omitempty"`

	Storage struct {
		HistoryDB string `json:"history_db"`
	} `json:"storage,omitempty"`

	Viewer struct {
		Identity     string   `json:"identity"`
		Organisation string   `json:"organisation"`
		Zoom         int      `json:"zoom"`
		IdleTimeout  Duration `json:"idle_timeout"`
	} `json:"viewer,omitempty"`

	Export struct {
		OutputDir    string `json:"output_dir"`
		Workers      int    `json:"workers"`
		AnalystName  string `json:"analyst_name"`
		AnalystEmail string `json:"analyst_email"`
	} `json:"export,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Source: Source{
			Kind:           jsonCfg.Source.Kind,
			File:           jsonCfg.Source.File,
			SupabaseURL:    jsonCfg.Source.SupabaseURL,
			SupabaseKey:    jsonCfg.Source.SupabaseKey,
			PostgresDSN:    jsonCfg.Source.PostgresDSN,
			RequestTimeout: time.Duration(jsonCfg.Source.RequestTimeout),
			Retries:        jsonCfg.Source.Retries,
		},
		Storage: Storage{
			HistoryDB: jsonCfg.Storage.HistoryDB,
		},
		Viewer: Viewer{
			Identity:     jsonCfg.Viewer.Identity,
			Organisation: jsonCfg.Viewer.Organisation,
			Zoom:         jsonCfg.Viewer.Zoom,
			IdleTimeout:  time.Duration(jsonCfg.Viewer.IdleTimeout),
		},
		Export: Export{
			OutputDir:    jsonCfg.Export.OutputDir,
			Workers:      jsonCfg.Export.Workers,
			AnalystName:  jsonCfg.Export.AnalystName,
			AnalystEmail: jsonCfg.Export.AnalystEmail,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "8h" or "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
