package parser

import (
	"strings"

	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/config"
	"github.com/wanderwerkhoven-afk/gipfel-lodge-dashboard/internal/model"
)

// GuessChannel classifies free-text booking-source text against the
// ordered rule table. An empty text is Unknown; non-empty text matching no
// rule is Other.
func GuessChannel(source string, rules []config.ChannelRule) model.Channel {
	s := strings.ToLower(strings.TrimSpace(source))
	if s == "" {
		return model.ChannelUnknown
	}
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(s, strings.ToLower(kw)) {
				return model.Channel(rule.Channel)
			}
		}
	}
	return model.ChannelOther
}
