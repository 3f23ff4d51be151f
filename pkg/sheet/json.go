package sheet

import (
	"encoding/json"
	"io"

	"depsheet/pkg/gradle"
)

type jsonEmitter struct{}

type jsonArtifact struct {
	Group   string `json:"group"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (jsonEmitter) Emit(w io.Writer, artifacts []gradle.Artifact) error {
	rows := make([]jsonArtifact, 0, len(artifacts))
	for _, a := range artifacts {
		rows = append(rows, jsonArtifact{Group: a.Group, Name: a.Name, Version: a.Version})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
