package tenderly

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tendersim/internal/credentials"
	"tendersim/internal/render"
)

// Section identifies one block of the simulation report.
type Section string

const (
	SectionSimulationURL  Section = "simulation_url"
	SectionAssetChanges   Section = "asset_changes"
	SectionBalanceDiff    Section = "balance_diff"
	SectionOutputValue    Section = "output_value"
	SectionStorageChanges Section = "storage_changes"
	SectionEventLogs      Section = "event_logs"
	SectionCallTrace      Section = "call_trace"
)

// ReportConfig controls section order and numeric presentation. Order changed
// between report revisions, so it is configuration rather than a constant.
type ReportConfig struct {
	Sections         []Section
	DollarDecimals   int
	IncludeShareLink bool
	DashboardURL     string
}

// DefaultReportConfig places the dashboard-link section first.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Sections: []Section{
			SectionSimulationURL,
			SectionAssetChanges,
			SectionBalanceDiff,
			SectionOutputValue,
			SectionStorageChanges,
			SectionEventLogs,
			SectionCallTrace,
		},
		DollarDecimals:   4,
		IncludeShareLink: true,
		DashboardURL:     "https://dashboard.tenderly.co",
	}
}

// LegacyReportConfig keeps the ordering of the earlier report revision, with
// asset changes leading.
func LegacyReportConfig() ReportConfig {
	cfg := DefaultReportConfig()
	cfg.Sections = []Section{
		SectionAssetChanges,
		SectionSimulationURL,
		SectionBalanceDiff,
		SectionOutputValue,
		SectionStorageChanges,
		SectionEventLogs,
		SectionCallTrace,
	}
	return cfg
}

// BuildReport renders a successful simulation response into the full report
// panel, with a divider between adjacent sections.
func BuildReport(resp *Response, creds credentials.Record, cfg ReportConfig) render.Node {
	labeler := NewLabeler(resp)

	var nodes []render.Node
	for i, section := range cfg.Sections {
		if i > 0 {
			nodes = append(nodes, render.Divider())
		}
		nodes = append(nodes, formatSection(section, resp, creds, labeler, cfg)...)
	}

	return render.Panel(nodes...)
}

// BuildErrorReport renders a classified simulation failure into its panel.
// The reverted variant is followed by the dashboard-link section so the user
// can still inspect the trace.
func BuildErrorReport(err error, resp *Response, creds credentials.Record, cfg ReportConfig) render.Node {
	var remote *RemoteServiceError
	var invalid *InvalidResponseError
	var reverted *ExecutionRevertedError

	switch {
	case errors.As(err, &remote):
		return render.Panel(
			render.Heading("❌ Transaction Error"),
			render.Text(fmt.Sprintf("**%s**", remote.Slug)),
			render.Divider(),
			render.Text(remote.Message),
		)
	case errors.As(err, &invalid):
		return render.Panel(
			render.Heading("❌ Invalid response"),
			render.Divider(),
			render.Text(string(invalid.Raw)),
		)
	case errors.As(err, &reverted):
		nodes := []render.Node{
			render.Heading(fmt.Sprintf("❌ Error in %s:", reverted.Address)),
			render.Divider(),
			render.Text(reverted.Message),
			render.Divider(),
		}
		nodes = append(nodes, formatSimulationURL(resp, creds, cfg)...)
		return render.Panel(nodes...)
	}

	return render.Panel(
		render.Heading("❌ Transaction Error"),
		render.Text(err.Error()),
	)
}

func formatSection(section Section, resp *Response, creds credentials.Record, labeler *Labeler, cfg ReportConfig) []render.Node {
	switch section {
	case SectionSimulationURL:
		return formatSimulationURL(resp, creds, cfg)
	case SectionAssetChanges:
		return formatAssetChanges(resp, cfg)
	case SectionBalanceDiff:
		return formatBalanceDiff(resp, labeler)
	case SectionOutputValue:
		return formatOutputValue(resp, labeler)
	case SectionStorageChanges:
		return formatStorageChanges(resp, labeler)
	case SectionEventLogs:
		return formatEventLogs(resp, labeler)
	case SectionCallTrace:
		return formatCallTrace(resp)
	}
	return nil
}

func formatSimulationURL(resp *Response, creds credentials.Record, cfg ReportConfig) []render.Node {
	var simulationID string
	if resp.Simulation != nil {
		simulationID = resp.Simulation.ID
	}

	status := "Failed ❌"
	if resp.Transaction != nil && resp.Transaction.Status {
		status = "Success ✅"
	}

	nodes := []render.Node{
		render.Heading("Tenderly Dashboard:"),
		render.Text("See full simulation details in Tenderly."),
		render.Text(fmt.Sprintf("**Status:** %s", status)),
		render.Copyable(fmt.Sprintf("%s/%s/%s/simulator/%s",
			cfg.DashboardURL, creds.UserID, creds.ProjectID, simulationID)),
	}

	if cfg.IncludeShareLink {
		nodes = append(nodes,
			render.Text("Share simulation details with others! 🤗"),
			render.Copyable(fmt.Sprintf("%s/shared/simulation/%s", cfg.DashboardURL, simulationID)),
		)
	}

	return nodes
}

func formatAssetChanges(resp *Response, cfg ReportConfig) []render.Node {
	nodes := []render.Node{render.Heading("Asset Changes:")}

	info := transactionInfo(resp)
	if info == nil || len(info.AssetChanges) == 0 {
		return append(nodes, render.Text("No asset changes"))
	}

	erc20 := []render.Node{render.Text("🪙 **ERC20 Changes:**")}
	erc721 := []render.Node{render.Text("🖼️ **ERC721 Changes:**")}
	other := []render.Node{render.Text("**Other Changes:**")}

	for _, change := range info.AssetChanges {
		switch change.TokenInfo.Standard {
		case "ERC20":
			erc20 = append(erc20,
				render.Text(fmt.Sprintf("**%s (%s)**", change.TokenInfo.Name, strings.ToUpper(change.TokenInfo.Symbol))),
				render.Text(fmt.Sprintf("Change Type: %s", change.Type)),
				render.Text(fmt.Sprintf("Price: $%s", formatDollars(change.DollarValue, cfg))),
				render.Text(fmt.Sprintf("Amount: %s", change.Amount)),
				render.Divider(),
			)
		case "ERC721":
			erc721 = append(erc721,
				render.Text(fmt.Sprintf("**%s (%s)**", change.TokenInfo.Name, strings.ToUpper(change.TokenInfo.Symbol))),
				render.Text(fmt.Sprintf("Change Type: %s", change.Type)),
				render.Text(fmt.Sprintf("Floor Price: $%s", formatDollars(change.DollarValue, cfg))),
				render.Text(fmt.Sprintf("Amount: %s", change.Amount)),
				render.Divider(),
			)
		default:
			other = append(other,
				render.Text(fmt.Sprintf("**%s** ($%s)", change.TokenInfo.Name, formatDollars(change.TokenInfo.DollarValue, cfg))),
				render.Text(fmt.Sprintf("Change Type: %s", change.Type)),
				render.Text(fmt.Sprintf("Amount: %s **($%s)**", change.Amount, formatDollars(change.DollarValue, cfg))),
				render.Divider(),
			)
		}
	}

	// buckets holding only their label are omitted entirely
	for _, bucket := range [][]render.Node{erc20, erc721, other} {
		if len(bucket) > 1 {
			nodes = append(nodes, bucket...)
		}
	}

	return nodes
}

func formatBalanceDiff(resp *Response, labeler *Labeler) []render.Node {
	nodes := []render.Node{render.Heading("Balance changes:")}

	trace := rootCallTrace(resp)
	if trace == nil || len(trace.BalanceDiff) == 0 {
		return append(nodes, render.Text("No balance changes"))
	}

	for _, balance := range trace.BalanceDiff {
		label := "BlockProducer"
		if !balance.IsMiner {
			label = labeler.Address(balance.Address)
		}
		delta := (balance.Dirty.Float64() - balance.Original.Float64()) / 1e18
		nodes = append(nodes, render.Text(fmt.Sprintf("**%s**: %s ETH", label, formatEther(delta))))
	}

	return nodes
}

func formatOutputValue(resp *Response, labeler *Labeler) []render.Node {
	nodes := []render.Node{render.Heading("Output value:")}

	trace := rootCallTrace(resp)
	if trace == nil || trace.Output == "" {
		return append(nodes, render.Text("No output value"))
	}

	if len(trace.DecodedOutput) == 0 {
		return append(nodes, render.Text(trace.Output))
	}

	for _, output := range trace.DecodedOutput {
		name, typ := soltypeParts(output.SolType)
		value := labeler.Substitute(string(output.Value))
		nodes = append(nodes, render.Text(fmt.Sprintf("%s[%s] = %s", name, typ, value)))
	}

	return nodes
}

func formatStorageChanges(resp *Response, labeler *Labeler) []render.Node {
	nodes := []render.Node{render.Heading("Storage Changes:")}

	info := transactionInfo(resp)
	if info == nil || len(info.StateDiff) == 0 {
		return append(nodes, render.Text("No storage changes"))
	}

	seen := make(map[string]bool)
	var contracts []string
	for _, diff := range info.StateDiff {
		if !seen[diff.Address] {
			seen[diff.Address] = true
			contracts = append(contracts, diff.Address)
		}
	}

	for _, contract := range contracts {
		nodes = append(nodes,
			render.Divider(),
			render.Text(fmt.Sprintf("**➤ %s**", labeler.Address(contract))),
		)

		for _, diff := range info.StateDiff {
			if diff.Address != contract {
				continue
			}
			if diff.SolType != nil {
				nodes = append(nodes, render.Text(fmt.Sprintf("▸ **%s[%s]:**", diff.SolType.Name, diff.SolType.Type)))
			}
			nodes = append(nodes, render.Text(fmt.Sprintf("%s => %s",
				labeler.Substitute(string(diff.Original)),
				labeler.Substitute(string(diff.Dirty)),
			)))
		}
	}

	return nodes
}

func formatEventLogs(resp *Response, labeler *Labeler) []render.Node {
	nodes := []render.Node{render.Heading("Event logs:")}

	trace := rootCallTrace(resp)
	if trace == nil || len(trace.Logs) == 0 {
		return append(nodes, render.Text("No event logs"))
	}

	for _, log := range trace.Logs {
		if log.Name != "" {
			var address string
			if log.Raw != nil {
				address = log.Raw.Address
			}
			nodes = append(nodes,
				render.Divider(),
				render.Text(fmt.Sprintf("**➤ %s::%s**", labeler.Address(address), log.Name)),
			)
			for _, input := range log.Inputs {
				name, typ := soltypeParts(input.SolType)
				nodes = append(nodes, render.Text(fmt.Sprintf("▸ **%s[%s]:** %s",
					name, typ, labeler.Substitute(string(input.Value)))))
			}
			continue
		}

		if log.Raw != nil {
			nodes = append(nodes,
				render.Text(fmt.Sprintf("**Address:** %s", log.Raw.Address)),
				render.Text(fmt.Sprintf("**Topics:** %s", strings.Join(log.Raw.Topics, ","))),
				render.Text(fmt.Sprintf("**Data:** %s", log.Raw.Data)),
			)
		}
	}

	return nodes
}

func formatCallTrace(resp *Response) []render.Node {
	nodes := []render.Node{render.Heading("Call trace:")}

	trace := rootCallTrace(resp)
	if trace == nil || len(trace.Calls) == 0 {
		return append(nodes, render.Text("No call trace"))
	}

	for _, call := range trace.Calls {
		nodes = append(nodes, traceLines(call, 0)...)
	}

	return nodes
}

// traceLines renders one call node and its children depth-first, pre-order.
// A node at depth d is indented by 4*d pipe characters.
func traceLines(node CallNode, depth int) []render.Node {
	contract := node.ContractName
	if contract == "" {
		contract = node.To
	}

	method := node.FunctionName
	if method == "" {
		method = node.Input
		if len(method) > 10 {
			method = method[:10]
		}
	}

	lines := []render.Node{
		render.Text(fmt.Sprintf("%s↳ %s::%s", strings.Repeat("|", 4*depth), contract, method)),
	}

	for _, child := range node.Calls {
		lines = append(lines, traceLines(child, depth+1)...)
	}

	return lines
}

func formatDollars(value Numeric, cfg ReportConfig) string {
	return strconv.FormatFloat(value.Float64(), 'f', cfg.DollarDecimals, 64)
}

func formatEther(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func soltypeParts(soltype *SolType) (string, string) {
	if soltype == nil {
		return "", ""
	}
	return soltype.Name, soltype.Type
}

func transactionInfo(resp *Response) *TransactionInfo {
	if resp == nil || resp.Transaction == nil {
		return nil
	}
	return resp.Transaction.TransactionInfo
}

func rootCallTrace(resp *Response) *CallTrace {
	info := transactionInfo(resp)
	if info == nil {
		return nil
	}
	return info.CallTrace
}
