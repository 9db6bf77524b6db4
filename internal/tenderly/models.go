package tenderly

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric tolerates values the simulation API returns either as JSON numbers
// or as decimal strings.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*n = Numeric(s)
	return nil
}

func (n Numeric) String() string {
	return string(n)
}

func (n Numeric) Float64() float64 {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0
	}
	return f
}

// SimulationRequest is the payload submitted to the simulate endpoint. Gas,
// value and network id are decimal integers decoded from the wallet's hex
// fields; absent fields stay null.
type SimulationRequest struct {
	From               string `json:"from"`
	To                 string `json:"to"`
	Input              string `json:"input"`
	Gas                *int64 `json:"gas"`
	Value              *int64 `json:"value"`
	NetworkID          *int64 `json:"network_id"`
	Save               bool   `json:"save"`
	SaveIfFails        bool   `json:"save_if_fails"`
	SimulationType     string `json:"simulation_type"`
	GenerateAccessList bool   `json:"generate_access_list"`
	Source             string `json:"source"`
}

// Response is a narrow view over the simulation service's JSON. Every nested
// entity is optional; formatters must guard each level. Raw keeps the
// untouched body for the invalid-response panel.
type Response struct {
	Transaction *Transaction   `json:"transaction"`
	Simulation  *Simulation    `json:"simulation"`
	Contracts   []Contract     `json:"contracts"`
	Error       *ResponseError `json:"error"`

	Raw json.RawMessage `json:"-"`
}

type ResponseError struct {
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

type Simulation struct {
	ID string `json:"id"`
}

type Contract struct {
	Address      string `json:"address"`
	ContractName string `json:"contract_name"`
}

type Transaction struct {
	Status          bool             `json:"status"`
	From            string           `json:"from"`
	To              string           `json:"to"`
	ErrorInfo       *ErrorInfo       `json:"error_info"`
	TransactionInfo *TransactionInfo `json:"transaction_info"`
}

type ErrorInfo struct {
	Address      string `json:"address"`
	ErrorMessage string `json:"error_message"`
}

type TransactionInfo struct {
	CallTrace    *CallTrace       `json:"call_trace"`
	AssetChanges []AssetChange    `json:"asset_changes"`
	StateDiff    []StateDiffEntry `json:"state_diff"`
}

// CallTrace is the root of the execution trace. Besides the nested calls it
// carries the trace-level output, balance diffs and event logs.
type CallTrace struct {
	Output        string         `json:"output"`
	DecodedOutput []DecodedValue `json:"decoded_output"`
	BalanceDiff   []BalanceDiff  `json:"balance_diff"`
	Logs          []EventLog     `json:"logs"`
	Calls         []CallNode     `json:"calls"`
}

type CallNode struct {
	ContractName string     `json:"contract_name"`
	To           string     `json:"to"`
	FunctionName string     `json:"function_name"`
	Input        string     `json:"input"`
	Calls        []CallNode `json:"calls"`
}

type BalanceDiff struct {
	Address  string  `json:"address"`
	Original Numeric `json:"original"`
	Dirty    Numeric `json:"dirty"`
	IsMiner  bool    `json:"is_miner"`
}

type SolType struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type DecodedValue struct {
	SolType *SolType        `json:"soltype"`
	Value   json.RawMessage `json:"value"`
}

type EventLog struct {
	Name   string         `json:"name"`
	Inputs []DecodedValue `json:"inputs"`
	Raw    *RawLog        `json:"raw"`
}

type RawLog struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

type AssetChange struct {
	TokenInfo   TokenInfo `json:"token_info"`
	Type        string    `json:"type"`
	Amount      Numeric   `json:"amount"`
	DollarValue Numeric   `json:"dollar_value"`
}

type TokenInfo struct {
	Standard    string  `json:"standard"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	DollarValue Numeric `json:"dollar_value"`
}

type StateDiffEntry struct {
	Address  string          `json:"address"`
	SolType  *SolType        `json:"soltype"`
	Original json.RawMessage `json:"original"`
	Dirty    json.RawMessage `json:"dirty"`
}
