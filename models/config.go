package models

// Priority decides in which round of a scan cycle a watched channel is visited.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ScanTiers is the visit order of one scan cycle, highest tier first.
var ScanTiers = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// PriorityChannel is one watched channel from the whitelist configuration.
type PriorityChannel struct {
	ID       string   `json:"id" mapstructure:"id"`
	Priority Priority `json:"priority" mapstructure:"priority"`
}

// StarboardConfig holds the curation settings from the "starboard" config key.
type StarboardConfig struct {
	Guild                  string            `json:"guild" mapstructure:"guild"`
	Channel                string            `json:"channel" mapstructure:"channel"`
	Threshold              int               `json:"threshold" mapstructure:"threshold"`
	Emoji                  string            `json:"emoji" mapstructure:"emoji"`
	ApprovedEmoji          string            `json:"approved_emoji" mapstructure:"approvedEmoji"`
	Reply                  bool              `json:"reply" mapstructure:"reply"`
	Replies                []string          `json:"replies" mapstructure:"replies"`
	EnableChannelWhitelist bool              `json:"enable_channel_whitelist" mapstructure:"enableChannelWhitelist"`
	Channels               []PriorityChannel `json:"channels" mapstructure:"channels"`
}

// IsWhitelisted reports whether a channel may feed the starboard. With the
// whitelist disabled every channel is allowed.
func (c *StarboardConfig) IsWhitelisted(channelID string) bool {
	if !c.EnableChannelWhitelist {
		return true
	}
	for _, ch := range c.Channels {
		if ch.ID == channelID {
			return true
		}
	}
	return false
}

// ChannelsByPriority returns the watched channel IDs belonging to one tier.
// Entries without an explicit priority count as medium.
func (c *StarboardConfig) ChannelsByPriority(p Priority) []string {
	var ids []string
	for _, ch := range c.Channels {
		prio := ch.Priority
		if prio == "" {
			prio = PriorityMedium
		}
		if prio == p {
			ids = append(ids, ch.ID)
		}
	}
	return ids
}

// PersistenceConfig holds the "persistence" config key.
type PersistenceConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Backend string `json:"backend" mapstructure:"backend"` // "json" or "sqlite"
	Path    string `json:"path" mapstructure:"path"`
}

// ScanConfig holds the "scan" config key for the polling variant.
type ScanConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	Schedule string `json:"schedule" mapstructure:"schedule"` // cron spec, e.g. "@every 5m"
	PageSize int    `json:"page_size" mapstructure:"pageSize"`
}

// CommandsConfig holds the "commands" config key.
type CommandsConfig struct {
	Auth AuthConfig `json:"auth" mapstructure:"auth"`
}

// AuthConfig lists who may run administrative commands.
type AuthConfig struct {
	Developers  []string `json:"developers" mapstructure:"developers"`
	AdminsRoles []string `json:"admins_roles" mapstructure:"admins_roles"`
	Guest       []string `json:"guest" mapstructure:"guest"`
}
