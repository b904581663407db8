package smtp_client

type HeaderOverrides struct {
	From      string   `json:"from" yaml:"from"`
	Sender    string   `json:"sender" yaml:"sender"`
	ReplyTo   []string `json:"replyTo" yaml:"replyTo"`
	NoReplyTo bool     `json:"noReplyTo" yaml:"noReplyTo"`
}
