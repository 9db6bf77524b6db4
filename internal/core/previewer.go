package core

import (
	"context"
	"errors"
	"fmt"

	"tendersim/internal/render"
	"tendersim/internal/repository"
	"tendersim/internal/tenderly"
	tokenIssuer "tendersim/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

const simulationSource string = "metamask-snap"

// Previewer runs transaction simulations against Tenderly and renders the
// results as report panels.
type Previewer struct {
	logs      *zap.SugaredLogger
	users     UserSource
	jwtIssuer JWTIssuer
	creds     CredentialStore
	api       SimulationAPI
	chain     ChainReader
	prompt    Prompter
	report    tenderly.ReportConfig
}

// NewPreviewer is a constructor function for the Previewer type.
func NewPreviewer(
	logger *zap.SugaredLogger,
	users UserSource,
	jwt JWTIssuer,
	creds CredentialStore,
	api SimulationAPI,
	chain ChainReader,
	prompt Prompter,
	report tenderly.ReportConfig,
) *Previewer {
	return &Previewer{
		logs:      logger,
		users:     users,
		jwtIssuer: jwt,
		creds:     creds,
		api:       api,
		chain:     chain,
		prompt:    prompt,
		report:    report,
	}
}

// Authenticate checks the provided username and password against the database.
// If the credentials are valid, it generates a JWT token for the user.
func (p *Previewer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := p.users.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := p.jwtIssuer.Generate(tokenInfo)
	signed, err := p.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// UpdateCredentials asks the caller for a new Tenderly credential string and
// stores it.
func (p *Previewer) UpdateCredentials(ctx context.Context, origin string) error {
	return p.creds.Update(ctx, origin)
}

// SendTransactionPrompt asks the caller for a raw transaction payload and
// returns whatever they typed, untouched.
func (p *Previewer) SendTransactionPrompt(ctx context.Context, origin string) (string, error) {
	content := render.Panel(
		render.Heading(fmt.Sprintf("%s wants to send the transaction", origin)),
		render.Text("Enter your transaction payload:"),
	)

	reply, err := p.prompt.Prompt(ctx, content, `{ "data": "0x..." }`)
	if err != nil {
		return "", fmt.Errorf("prompting for transaction payload: %w", err)
	}

	return reply, nil
}

// TransactionInsight produces the report panel for an inbound transaction.
// Transactions without a recipient cannot be simulated.
func (p *Previewer) TransactionInsight(ctx context.Context, tx TransactionPayload, origin string) (render.Node, error) {
	if tx.To == "" {
		return render.Text("Unknown transaction type"), nil
	}

	return p.Simulate(ctx, tx, origin)
}

// Simulate submits the transaction to Tenderly and renders the simulation
// result. A missing credential record triggers the update dialog and returns
// a retry notice instead of a report.
func (p *Previewer) Simulate(ctx context.Context, tx TransactionPayload, origin string) (render.Node, error) {
	record, err := p.creds.Fetch(ctx, origin)
	if err != nil {
		return render.Node{}, fmt.Errorf("fetching credentials: %w", err)
	}

	if record == nil {
		return render.Panel(render.Text("🚨 Tenderly access key updated. Please try again.")), nil
	}

	chainID, err := p.chain.NetworkID(ctx)
	if err != nil {
		return render.Node{}, fmt.Errorf("fetching network id: %w", err)
	}

	simReq := p.buildSimulationRequest(tx, chainID.Int64())

	resp, err := p.api.Simulate(ctx, simReq, *record)
	if err != nil {
		return render.Node{}, fmt.Errorf("submitting simulation: %w", err)
	}

	if resp.Simulation != nil && resp.Simulation.ID != "" {
		if err := p.api.Share(ctx, resp.Simulation.ID, *record); err != nil {
			p.logs.Warnw("sharing simulation", "simulationId", resp.Simulation.ID, "error", err)
		}
	}

	if simErr := tenderly.Classify(resp); simErr != nil {
		p.logs.Infow("simulation failed", "origin", origin, "error", simErr)
		return tenderly.BuildErrorReport(simErr, resp, *record, p.report), nil
	}

	return tenderly.BuildReport(resp, *record, p.report), nil
}

func (p *Previewer) buildSimulationRequest(tx TransactionPayload, networkID int64) tenderly.SimulationRequest {
	return tenderly.SimulationRequest{
		From:               tx.From,
		To:                 tx.To,
		Input:              tx.Data,
		Gas:                tenderly.HexToInt(tx.Gas),
		Value:              tenderly.HexToInt(tx.Value),
		NetworkID:          &networkID,
		Save:               true,
		SaveIfFails:        true,
		SimulationType:     "full",
		GenerateAccessList: false,
		Source:             simulationSource,
	}
}
