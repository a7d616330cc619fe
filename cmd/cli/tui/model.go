package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rewardvault/reward-vault-go/internal/actor"
	"github.com/rewardvault/reward-vault-go/internal/types"
)

var cmdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff66ff"))

const helpText = `Commands:
  /state                 pool catalog
  /status                vault summary
  /draw <addr>           draw for a participant
  /redeem <addr>         redeem a pending reward
  /pending <addr>        show a participant's pending reward
  /add <kind> <value>    append a reward (kind 1..3)
  /remove <index>        remove the reward at index
  /pause | /unpause      gate the participant surface
  /salt <n> | /fee <n>   update draw parameters
  /provider <addr>       update the payout address
  /withdraw              sweep collected fees
  /snapshot | /flush     durability controls`

// logMsg carries one log line from the actor system into the viewport.
type logMsg string

type Model struct {
	system    *actor.System
	admin     types.Address
	logChan   <-chan string
	viewport  viewport.Model
	textInput textinput.Model
	history   []string
	ready     bool
}

func NewModel(system *actor.System, admin types.Address, logChan <-chan string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command... (/help)"
	ti.Focus()
	ti.Width = 80

	return Model{
		system:    system,
		admin:     admin,
		logChan:   logChan,
		textInput: ti,
		history:   []string{},
	}
}

func waitForLog(ch <-chan string) bubbletea.Cmd {
	return func() bubbletea.Msg {
		return logMsg(<-ch)
	}
}

func (m Model) Init() bubbletea.Cmd {
	return bubbletea.Batch(textinput.Blink, waitForLog(m.logChan))
}

func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	var (
		cmd  bubbletea.Cmd
		cmds []bubbletea.Cmd
	)

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case logMsg:
		m.appendHistory(strings.TrimRight(string(msg), "\n"))
		cmds = append(cmds, waitForLog(m.logChan))
	case bubbletea.KeyMsg:
		switch msg.Type {
		case bubbletea.KeyEnter:
			input := m.textInput.Value()
			m.textInput.Reset()

			parts := strings.Fields(input)
			if len(parts) == 0 {
				return m, nil
			}

			m.appendHistory(cmdStyle.Render(input))
			m.runCommand(parts[0], parts[1:])
		case bubbletea.KeyCtrlC, bubbletea.KeyEsc:
			return m, bubbletea.Quit
		}
	case bubbletea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		viewportHeight := 14

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
		}
		m.textInput.Width = msg.Width - 4
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, bubbletea.Batch(cmds...)
}

func (m *Model) runCommand(command string, args []string) {
	switch command {
	case "/help":
		m.appendHistory(helpText)
	case "/state":
		m.appendHistory(prettyState(m.system.State()))
	case "/status":
		st := m.system.Status()
		m.appendHistory(fmt.Sprintf("PoolSize: %d  FeeBalance: %d  Fee: %d  Salt: %d  Paused: %v  Provider: %s",
			st.PoolSize, st.FeeBalance, st.Config.FeeAmount, st.Config.Salt, st.Config.Paused, st.Config.Provider))
		m.appendHistory(fmt.Sprintf("LatestRequestId: %d", m.system.GetRequestID()))
	case "/draw":
		if len(args) < 1 {
			m.appendHistory("usage: /draw <addr>")
			return
		}
		resp := <-m.system.Draw(types.Address(args[0]))
		if resp.Err != nil {
			m.appendHistory(fmt.Sprintf("[Request %d] Draw failed: %v", resp.RequestID, resp.Err))
		} else {
			m.appendHistory(fmt.Sprintf("[Request %d] %s drew: %s", resp.RequestID, args[0], prettyReward(resp.Reward)))
		}
	case "/redeem":
		if len(args) < 1 {
			m.appendHistory("usage: /redeem <addr>")
			return
		}
		resp := <-m.system.Redeem(types.Address(args[0]))
		if resp.Err != nil {
			m.appendHistory(fmt.Sprintf("[Request %d] Redeem failed: %v", resp.RequestID, resp.Err))
		} else {
			m.appendHistory(fmt.Sprintf("[Request %d] %s redeemed: %s", resp.RequestID, args[0], prettyReward(resp.Reward)))
		}
	case "/pending":
		if len(args) < 1 {
			m.appendHistory("usage: /pending <addr>")
			return
		}
		reward, ok := m.system.PendingRewardOf(types.Address(args[0]))
		if !ok {
			m.appendHistory(fmt.Sprintf("%s has no pending reward", args[0]))
		} else {
			m.appendHistory(fmt.Sprintf("%s pending: %s", args[0], prettyReward(reward)))
		}
	case "/add":
		if len(args) < 2 {
			m.appendHistory("usage: /add <kind 1..3> <value>")
			return
		}
		kind, err1 := strconv.ParseUint(args[0], 10, 8)
		value, err2 := strconv.ParseUint(args[1], 10, 64)
		if err1 != nil || err2 != nil {
			m.appendHistory("usage: /add <kind 1..3> <value>")
			return
		}
		m.reportErr(m.system.AddReward(m.admin, types.RewardDescriptor{
			Kind:       types.RewardKind(kind),
			AmountOrID: value,
		}))
	case "/remove":
		if len(args) < 1 {
			m.appendHistory("usage: /remove <index>")
			return
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			m.appendHistory("usage: /remove <index>")
			return
		}
		m.reportErr(m.system.RemoveReward(m.admin, index))
	case "/pause":
		m.reportErr(m.system.Pause(m.admin))
	case "/unpause":
		m.reportErr(m.system.Unpause(m.admin))
	case "/salt":
		if len(args) < 1 {
			m.appendHistory("usage: /salt <n>")
			return
		}
		salt, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			m.appendHistory("usage: /salt <n>")
			return
		}
		m.reportErr(m.system.SetSalt(m.admin, salt))
	case "/fee":
		if len(args) < 1 {
			m.appendHistory("usage: /fee <n>")
			return
		}
		fee, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			m.appendHistory("usage: /fee <n>")
			return
		}
		m.reportErr(m.system.SetFee(m.admin, fee))
	case "/provider":
		if len(args) < 1 {
			m.appendHistory("usage: /provider <addr>")
			return
		}
		m.reportErr(m.system.SetProvider(m.admin, types.Address(args[0])))
	case "/withdraw":
		amount, err := m.system.Withdraw(m.admin)
		if err != nil {
			m.appendHistory(fmt.Sprintf("error: %v", err))
		} else {
			m.appendHistory(fmt.Sprintf("withdrew %d", amount))
		}
	case "/snapshot":
		m.reportErr(m.system.Snapshot())
	case "/flush":
		m.reportErr(m.system.Flush())
	default:
		m.appendHistory("unknown command, try /help")
	}
}

func (m *Model) reportErr(err error) {
	if err != nil {
		m.appendHistory(fmt.Sprintf("error: %v", err))
	} else {
		m.appendHistory("ok")
	}
}

func (m *Model) appendHistory(lines string) {
	m.history = append(m.history, lines)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	return style.Render("Reward Vault TUI")
}

func (m Model) footerView() string {
	return m.textInput.View()
}

func prettyReward(r types.RewardDescriptor) string {
	return fmt.Sprintf("%s(%d)", r.Kind, r.AmountOrID)
}

func prettyState(state []types.RewardDescriptor) string {
	if len(state) == 0 {
		return "(pool empty)"
	}
	var builder strings.Builder
	for i, r := range state {
		builder.WriteString(fmt.Sprintf("%-4d Kind: %-14s AmountOrID: %d\n", i, r.Kind, r.AmountOrID))
	}
	return strings.TrimRight(builder.String(), "\n")
}
