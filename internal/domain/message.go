package domain

import "encoding/json"

type MessageType string

const (
	MessageSyncTag      MessageType = "SYNC_TAG"
	MessageSyncProgress MessageType = "SYNC_PROGRESS"
	MessageGetProgress  MessageType = "GET_PROGRESS"
)

// Message is a request sent from an agent to the background process.
// SYNC_TAG and SYNC_PROGRESS carry Data, GET_PROGRESS carries Bvid.
type Message struct {
	Type MessageType  `json:"type"`
	Data *SyncRequest `json:"data,omitempty"`
	Bvid string       `json:"bvid,omitempty"`
}

// Reply answers exactly one Message.
type Reply struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func SuccessReply(data any) (Reply, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Success: true, Data: raw}, nil
}

func ErrorReply(err error) Reply {
	return Reply{Success: false, Error: err.Error()}
}

// Result decodes Data as a SyncResult. Numbers come back as float64.
func (r Reply) Result() (SyncResult, error) {
	if len(r.Data) == 0 {
		return SyncResult{}, nil
	}
	var out SyncResult
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
