package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/plugin"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/ericzzh/mattermost-plugin-offboard/server/bot"
	"github.com/ericzzh/mattermost-plugin-offboard/server/config"
	pluginapi "github.com/mattermost/mattermost-plugin-api"
	"github.com/pkg/errors"
)

const helpText = "######  Offboard Plugin - Slash Command Help\n" +
	"* `/offboard plan <username>` - Show what deleting the user would do. \n" +
	"* `/offboard delete <username> [Delete|Unlink]` - Delete the user. The erasure mode defaults to the plugin setting. \n" +
	"* `/offboard resume <username or user id>` - Continue an interrupted deletion. \n" +
	"* `/offboard pending` - List the deletions that did not finish. \n" +
	"* `/offboard peers` - List the remote servers that still have users here. \n" +
	""

// Register is a function that allows the runner to register commands with the mattermost server.
type Register func(*model.Command) error

// RegisterCommands should be called by the plugin to register all necessary commands
func RegisterCommands(registerFunc Register) error {
	return registerFunc(getCommand())
}

func getCommand() *model.Command {
	return &model.Command{
		Trigger:          "offboard",
		DisplayName:      "Offboard",
		Description:      "Delete users and hand over their rooms",
		AutoComplete:     true,
		AutoCompleteDesc: "Available commands: plan, delete, resume, pending, peers, help",
		AutoCompleteHint: "[command]",
		AutocompleteData: getAutocompleteData(),
	}
}

func getAutocompleteData() *model.AutocompleteData {
	command := model.NewAutocompleteData("offboard", "[command]",
		"Available commands: plan, delete, resume, pending, peers, help")

	plan := model.NewAutocompleteData("plan", "<username>", "Shows what deleting the user would do")
	plan.AddTextArgument("Username of the user", "<username>", "")
	command.AddCommand(plan)

	del := model.NewAutocompleteData("delete", "<username> [mode]", "Deletes the user")
	del.AddTextArgument("Username of the user", "<username>", "")
	del.AddStaticListArgument("Erasure mode of the messages", false, []model.AutocompleteListItem{
		{Item: string(app.ErasureDelete), HelpText: "Delete the messages of the user"},
		{Item: string(app.ErasureUnlink), HelpText: "Keep the messages under the removed user alias"},
	})
	command.AddCommand(del)

	resume := model.NewAutocompleteData("resume", "<username or user id>", "Continues an interrupted deletion")
	resume.AddTextArgument("Username or id of the user", "<username or user id>", "")
	command.AddCommand(resume)

	command.AddCommand(model.NewAutocompleteData("pending", "", "Lists the deletions that did not finish"))
	command.AddCommand(model.NewAutocompleteData("peers", "", "Lists the federated servers"))
	command.AddCommand(model.NewAutocompleteData("help", "", "Shows the help"))

	return command
}

// Runner handles commands.
type Runner struct {
	context         *plugin.Context
	args            *model.CommandArgs
	pluginAPI       *pluginapi.Client
	logger          bot.Logger
	poster          bot.Poster
	configService   config.Service
	deletionService app.DeletionService
	federation      app.FederationRegistry
}

// NewCommandRunner creates a command runner.
func NewCommandRunner(ctx *plugin.Context,
	args *model.CommandArgs,
	api *pluginapi.Client,
	logger bot.Logger,
	poster bot.Poster,
	configService config.Service,
	ds app.DeletionService,
	federation app.FederationRegistry,
) *Runner {
	return &Runner{
		context:         ctx,
		args:            args,
		pluginAPI:       api,
		logger:          logger,
		poster:          poster,
		configService:   configService,
		deletionService: ds,
		federation:      federation,
	}
}

func (r *Runner) isValid() error {
	if r.context == nil || r.args == nil || r.pluginAPI == nil {
		return errors.New("invalid arguments to command.Runner")
	}
	return nil
}

// Execute should be called by the plugin when a command invocation is received from the Mattermost server.
func (r *Runner) Execute() error {
	if err := r.isValid(); err != nil {
		return err
	}

	split := strings.Fields(r.args.Command)
	command := split[0]
	parameters := []string{}
	cmd := ""
	if len(split) > 1 {
		cmd = split[1]
	}
	if len(split) > 2 {
		parameters = split[2:]
	}

	if command != "/offboard" {
		return nil
	}

	if cmd == "" || cmd == "help" {
		r.postCommandResponse(helpText)
		return nil
	}

	if !r.isSystemAdmin() {
		return nil
	}

	switch cmd {
	case "plan":
		r.actionPlan(parameters)
	case "delete":
		r.actionDelete(parameters)
	case "resume":
		r.actionResume(parameters)
	case "pending":
		r.actionPending()
	case "peers":
		r.actionPeers()
	default:
		r.postCommandResponse(helpText)
	}

	return nil
}

func (r *Runner) postCommandResponse(text string) {
	post := &model.Post{
		Message: text,
	}
	r.poster.EphemeralPost(r.args.UserId, r.args.ChannelId, post)
}

func (r *Runner) postJSON(title string, v interface{}) {
	res, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		txt := fmt.Sprintf("Marshaling result to json has errors. %v", err)
		r.logger.Errorf(txt)
		r.postCommandResponse(txt)
		return
	}

	r.postCommandResponse(fmt.Sprintf("%s \n```json\n%s\n```", title, string(res)))
}

func (r *Runner) postError(action string, err error) {
	txt := fmt.Sprintf("%s failed. %v", action, err)
	if code := app.ErrorCode(err); code != "" {
		txt = fmt.Sprintf("%s failed. `%s` %v", action, code, err)
	}
	r.logger.Errorf("Offboard: %s", txt)
	r.postCommandResponse(txt)
}

func (r *Runner) isSystemAdmin() bool {
	usr, err := r.pluginAPI.User.Get(r.args.UserId)
	if err != nil {
		r.postCommandResponse(fmt.Sprintf("Can't find user. Error: %v", err))
		return false
	}

	if !strings.Contains(usr.Roles, model.SystemAdminRoleId) {
		r.postCommandResponse("You don't have permission to run this command.")
		return false
	}
	return true
}

// lookupUserId resolves a username. With acceptId set, a valid id of a user that is
// already gone is accepted as well.
func (r *Runner) lookupUserId(name string, acceptId bool) (string, error) {
	name = trimMention(name)

	usr, err := r.pluginAPI.User.GetByUsername(name)
	if err == nil {
		return usr.Id, nil
	}
	if acceptId && model.IsValidId(name) {
		return name, nil
	}

	return "", fmt.Errorf("%w username:%v", app.ErrUserNotFound, name)
}

func trimMention(name string) string {
	return strings.TrimPrefix(name, "@")
}

func (r *Runner) actionPlan(args []string) {
	if len(args) != 1 {
		r.postCommandResponse("Please specify the username. `/offboard plan <username>`")
		return
	}

	userId, err := r.lookupUserId(args[0], false)
	if err != nil {
		r.postError("Planning", err)
		return
	}

	plan, err := r.deletionService.Plan(userId)
	if err != nil {
		r.postError("Planning", err)
		return
	}

	r.postJSON(fmt.Sprintf("Deleting @%s would transfer %d rooms and remove %d rooms.",
		trimMention(args[0]), len(plan.Transfers()), len(plan.RoomsToRemove())), plan)
}

func (r *Runner) actionDelete(args []string) {
	if len(args) < 1 || len(args) > 2 {
		r.postCommandResponse("Please specify the username. `/offboard delete <username> [Delete|Unlink]`")
		return
	}

	cfg := r.configService.GetConfiguration().Clone()
	if len(args) == 2 {
		cfg.ErasureMode = args[1]
	}

	opts, err := app.NewOptions(cfg)
	if err != nil {
		r.postError("Deleting", err)
		return
	}

	userId, err := r.lookupUserId(args[0], false)
	if err != nil {
		r.postError("Deleting", err)
		return
	}

	if userId == r.args.UserId {
		r.postCommandResponse("You can't delete yourself.")
		return
	}

	res, err := r.deletionService.DeleteUser(userId, opts)
	if err != nil {
		r.postError("Deleting", err)
		return
	}

	r.logger.Infof("Offboard: user %s deleted by %s.", userId, r.args.UserId)
	r.postJSON(fmt.Sprintf("Deleted @%s successfully.", trimMention(args[0])), res)
}

func (r *Runner) actionResume(args []string) {
	if len(args) != 1 {
		r.postCommandResponse("Please specify the user. `/offboard resume <username or user id>`")
		return
	}

	userId, err := r.lookupUserId(args[0], true)
	if err != nil {
		r.postError("Resuming", err)
		return
	}

	res, err := r.deletionService.Resume(userId)
	if err != nil {
		r.postError("Resuming", err)
		return
	}

	r.postJSON(fmt.Sprintf("Resumed deletion of %s successfully.", trimMention(args[0])), res)
}

type pendingIntent struct {
	UserId    string
	Username  string
	Mode      app.ErasureMode
	Pending   []app.Step
	LastError string `json:",omitempty"`
}

func (r *Runner) actionPending() {
	intents, err := r.deletionService.PendingIntents()
	if err != nil {
		r.postError("Listing", err)
		return
	}

	if len(intents) == 0 {
		r.postCommandResponse("No deletion in progress.")
		return
	}

	pending := make([]pendingIntent, 0, len(intents))
	for _, i := range intents {
		p := pendingIntent{
			UserId:    i.UserId,
			Mode:      i.Options.Mode,
			Pending:   i.Pending(),
			LastError: i.LastError,
		}
		if i.Plan != nil && i.Plan.User != nil {
			p.Username = i.Plan.User.Username
		}
		pending = append(pending, p)
	}

	r.postJSON(fmt.Sprintf("%d deletions did not finish.", len(pending)), pending)
}

func (r *Runner) actionPeers() {
	if err := r.federation.Refresh(); err != nil {
		r.postError("Refreshing", err)
		return
	}

	servers := r.federation.Servers()
	if len(servers) == 0 {
		r.postCommandResponse("No federated servers.")
		return
	}

	r.postCommandResponse("Federated servers:\n* " + strings.Join(servers, "\n* "))
}
