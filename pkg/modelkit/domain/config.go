package domain

// A list of config keys supported by the models and the frontends.

const (
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyLoadDelay how long Load() pretends to be busy before acquiring a responder, in milliseconds
	ConfigKeyLoadDelay = "loadDelay"
	// ConfigKeyMaxTextLength texts longer than that (in characters, after cleaning) are rejected
	ConfigKeyMaxTextLength = "maxTextLength"
	// ConfigKeyMaxImagePredictions how many top predictions the image model keeps
	ConfigKeyMaxImagePredictions = "maxImagePredictions"
	// ConfigKeyTextModelName the name of the sentiment model artifact
	ConfigKeyTextModelName = "textModelName"
	// ConfigKeyImageModelName the name of the image classification model artifact
	ConfigKeyImageModelName = "imageModelName"
	// ConfigKeySentimentCommand an external command which performs real sentiment analysis. If empty or not found,
	// the text model is simulated.
	ConfigKeySentimentCommand = "sentimentCommand"
	// ConfigKeyImageClassificationCommand an external command which performs real image classification. If empty or
	// not found, the image model is simulated.
	ConfigKeyImageClassificationCommand = "imageClassificationCommand"
	// ConfigKeyTempDirectory where downloaded images are saved
	ConfigKeyTempDirectory = "tempDirectory"
	// ConfigKeyIRCServer the IRC server the bot connects to
	ConfigKeyIRCServer = "ircServer"
	// ConfigKeyIRCNick the bot's nickname; messages must start with it
	ConfigKeyIRCNick = "ircNick"
	// ConfigKeyIRCChannel the channel to join, without '#'
	ConfigKeyIRCChannel = "ircChannel"
)
