package main

import (
	"net/http"

	"github.com/mattermost/mattermost-server/v6/model"
	"github.com/mattermost/mattermost-server/v6/plugin"
	"github.com/pkg/errors"

	"github.com/ericzzh/mattermost-plugin-offboard/server/app"
	"github.com/ericzzh/mattermost-plugin-offboard/server/blobstore"
	"github.com/ericzzh/mattermost-plugin-offboard/server/bot"
	"github.com/ericzzh/mattermost-plugin-offboard/server/command"
	"github.com/ericzzh/mattermost-plugin-offboard/server/config"
	"github.com/ericzzh/mattermost-plugin-offboard/server/pluginkvstore"
	"github.com/ericzzh/mattermost-plugin-offboard/server/sqlstore"
	pluginapi "github.com/mattermost/mattermost-plugin-api"
)

// Plugin implements the interface expected by the Mattermost server to communicate between the server and plugin processes.
type Plugin struct {
	plugin.MattermostPlugin
	config          *config.ServiceImpl
	pluginAPI       *pluginapi.Client
	bot             *bot.Bot
	federation      *sqlstore.FederationRegistry
	deletionService app.DeletionService
}

// See https://developers.mattermost.com/extend/plugins/server/reference/
func (p *Plugin) OnActivate() error {
	pluginAPIClient := pluginapi.NewClient(p.API, p.Driver)
	p.pluginAPI = pluginAPIClient

	p.config = config.NewConfigService(pluginAPIClient, manifest)

	botID, ensureBotError := pluginAPIClient.Bot.EnsureBot(&model.Bot{
		Username:    "offboard",
		DisplayName: "Offboard Plugin Bot",
		Description: "A bot account created by the offboard plugin. It keeps the messages of removed users.",
	})
	if ensureBotError != nil {
		return errors.Wrap(ensureBotError, "failed to ensure offboard bot.")
	}

	err := p.config.UpdateConfiguration(func(c *config.Configuration) {
		c.BotUserID = botID
	})
	if err != nil {
		return errors.Wrapf(err, "failed save bot to config")
	}

	p.bot = bot.New(pluginAPIClient, p.config.GetConfiguration().BotUserID, p.config)

	db, err := pluginAPIClient.Store.GetMasterDB()
	if err != nil {
		return errors.Wrapf(err, "failed getting the master database")
	}

	sqlStore, err := sqlstore.New(db, pluginAPIClient.Store.DriverName(), p.bot)
	if err != nil {
		return errors.Wrapf(err, "failed creating the SQL store")
	}

	serverConfig := pluginAPIClient.Configuration.GetUnsanitizedConfig()
	blobStore, err := blobstore.NewFromConfig(&serverConfig.FileSettings)
	if err != nil {
		return errors.Wrapf(err, "failed creating the blob store")
	}

	p.federation = sqlstore.NewFederationRegistry(sqlStore)
	if err = p.federation.Refresh(); err != nil {
		p.bot.Warnf("Offboard: failed to load federated servers. err:%v", err)
	}

	intentStore := pluginkvstore.NewIntentStore(pluginkvstore.NewPluginKV(pluginAPIClient))
	p.deletionService = app.NewDeletionService(sqlStore.Stores(), blobStore, intentStore, p.bot, p.federation, p.bot)

	if err = command.RegisterCommands(p.API.RegisterCommand); err != nil {
		return errors.Wrapf(err, "failed register commands")
	}

	return nil
}

func (p *Plugin) ExecuteCommand(c *plugin.Context, args *model.CommandArgs) (*model.CommandResponse, *model.AppError) {
	runner := command.NewCommandRunner(c, args, pluginapi.NewClient(p.API, p.Driver), p.bot, p.bot,
		p.config, p.deletionService, p.federation)

	if err := runner.Execute(); err != nil {
		return nil, model.NewAppError("Offboard.ExecuteCommand", "app.command.execute.error", nil, err.Error(), http.StatusInternalServerError)
	}

	return &model.CommandResponse{}, nil
}

// OnConfigurationChange handles any change in the configuration.
func (p *Plugin) OnConfigurationChange() error {
	if p.config == nil {
		return nil
	}

	return p.config.OnConfigurationChange()
}
