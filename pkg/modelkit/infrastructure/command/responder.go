package command

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

// Responder runs an external classifier for every input:
//
//	<command> --model <model name> --input <cleaned text or image path>
//
// The command must print a JSON array of {"label": .., "score": ..} objects to stdout.
type Responder struct {
	// Only 1 execution at a time: classifiers are usually too heavy to run side by side on commodity hardware.
	mutex     sync.Mutex
	path      string
	modelName string
}

// NewResponderProvider returns a provider which finds `command` on disk or in PATH. If `command` is empty or can't
// be found, the provider reports domain.ErrResponderUnavailable, so that the model falls back to simulation.
func NewResponderProvider(command string) domain.ResponderProvider {
	return func(modelName string) (domain.Responder, error) {
		if command == "" {
			return nil, errors.Wrap(domain.ErrResponderUnavailable, "no command configured")
		}
		path, err := exec.LookPath(command)
		if err != nil {
			return nil, errors.Wrap(domain.ErrResponderUnavailable, err.Error())
		}
		return &Responder{
			path:      path,
			modelName: modelName,
		}, nil
	}
}

func (r *Responder) Respond(input string) ([]domain.Prediction, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	cmd := exec.Command(r.path, "--model", r.modelName, "--input", input)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", r.path)
	}
	var predictions []domain.Prediction
	err = json.Unmarshal([]byte(strings.TrimSpace(out.String())), &predictions)
	if err != nil {
		return nil, errors.Wrap(err, "malformed classifier output")
	}
	return predictions, nil
}
