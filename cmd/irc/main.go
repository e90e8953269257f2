package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/whyrusleeping/hellabot"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/api"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfigOrDefault("config.yaml")
	if err != nil {
		return err
	}
	nick := config.GetStringOrDefault(domain.ConfigKeyIRCNick, "ModelKit")
	channel := config.GetStringOrDefault(domain.ConfigKeyIRCChannel, "modelkit")
	serverName := config.GetStringOrDefault(domain.ConfigKeyIRCServer, "irc.euirc.net:6667")
	models, err := api.NewAPI(config)
	if err != nil {
		return err
	}
	b, err := newBot(models)
	if err != nil {
		return err
	}
	ircBot, err := hbot.NewBot(serverName, nick)
	if err != nil {
		return err
	}
	ircBot.AddTrigger(hbot.Trigger{
		Condition: func(_ *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG" && len(m.To) != 0 && m.To[0] == '#' &&
				strings.HasPrefix(strings.ToLower(m.Content), strings.ToLower(nick))
		},
		Action: func(hb *hbot.Bot, m *hbot.Message) bool {
			what := strings.TrimSpace(m.Content[len(nick):])
			what = strings.TrimSpace(strings.TrimPrefix(what, ","))
			for _, reply := range b.respond(what) {
				hb.Reply(m, m.From+" "+reply)
			}
			return true
		},
	})
	ircBot.Channels = []string{"#" + channel}
	ircBot.Run()
	return nil
}

// bot keeps one loaded instance per model type. Messages look like "<nick>, 2 https://example.com/dog.png".
type bot struct {
	api    api.API
	mutex  sync.Mutex
	models []domain.Model
}

func newBot(models api.API) (*bot, error) {
	b := &bot{api: models}
	for _, modelType := range models.ListAvailable() {
		model, err := models.Create(modelType)
		if err != nil {
			return nil, err
		}
		model.Load()
		if model.LoadState() != domain.LoadStateLoaded {
			return nil, fmt.Errorf("failed to load '%s'", modelType)
		}
		b.models = append(b.models, model)
	}
	return b, nil
}

func (b *bot) respond(what string) []string {
	if what == "" || what == "list" || what == "help" {
		return b.usage()
	}
	numberStr, input, _ := strings.Cut(what, " ")
	number, err := strconv.Atoi(strings.TrimSuffix(numberStr, ":"))
	if err != nil || number < 1 || number > len(b.models) {
		return b.usage()
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	model := b.models[number-1]
	kind := domain.InputKindText
	if model.Accepts(domain.InputKindImage) {
		kind = domain.InputKindImage
		path, cleanup, err := b.api.ResolveImageInput(input)
		defer cleanup()
		if err != nil {
			return []string{"couldn't download the image: " + err.Error()}
		}
		input = path
	}
	output, err := b.api.Run(model, number, kind, strings.TrimSpace(input))
	if err != nil {
		return []string{err.Error()}
	}
	return []string{summarize(output)}
}

func (b *bot) usage() []string {
	var lines []string
	for i, model := range b.models {
		lines = append(lines, fmt.Sprintf("%d: %s (%s)", i+1, model.Category(), model.Describe().InputType))
	}
	return lines
}

// summarize renders an output on one line, since IRC is line-based.
func summarize(output *api.Output) string {
	if output.Error != "" {
		return output.Error
	}
	if output.Result.IsError() {
		return output.Result.Error
	}
	var predictions []string
	for _, prediction := range output.Result.Predictions {
		predictions = append(predictions, fmt.Sprintf("%s (%.2f)", prediction.Label, prediction.Score))
	}
	return strings.Join(predictions, ", ")
}
