package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tauthy/ai"
	"tauthy/grpc/client"
	"tauthy/ingest"
	"tauthy/moderation"
	pb "tauthy/proto/tauthy/v1"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"
)

func newRootCommand(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "tauthy",
		Short:         "Tell AI-written text from human-written text (English and Thai)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Addr, "server", cfg.Addr, "server address")
	pf.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout of one call")

	// flags write into cfg, so commands read it through the pointer
	c := &cfg
	root.AddCommand(
		registerCommand(c),
		loginCommand(c),
		predictCommand(c),
		reanalyzeCommand(c),
		feedbackCommand(c),
		historyCommand(c),
		searchCommand(c),
		healthCommand(c),
		classifyCommand(c),
	)
	return root
}

// withClient dials the server with the saved token and runs fn under the call timeout.
func withClient(cmd *cobra.Command, cfg *Config, fn func(ctx context.Context, c *client.Client) error) error {
	c, err := client.Dial(cfg.Addr)
	if err != nil {
		return err
	}
	defer c.Close()
	c.SetToken(cfg.SavedToken())

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()
	return fn(ctx, c)
}

func registerCommand(cfg *Config) *cobra.Command {
	var in pb.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := passwordOrStdin(cmd, in.Password)
			if err != nil {
				return err
			}
			in.Password = password
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				res, err := c.Register(ctx, &in)
				if err != nil {
					return err
				}
				if err := cfg.SaveToken(res.Token); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", res.Username, res.UserId)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.FirstName, "first-name", "", "first name")
	f.StringVar(&in.LastName, "last-name", "", "last name")
	f.StringVar(&in.Username, "username", "", "username, 3 to 32 letters or digits")
	f.StringVar(&in.Email, "email", "", "email (optional)")
	f.StringVar(&in.Password, "password", "", "password, read from stdin when empty")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func loginCommand(cfg *Config) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and keep the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordOrStdin(cmd, password)
			if err != nil {
				return err
			}
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				res, err := c.Login(ctx, args[0], pw)
				if err != nil {
					return err
				}
				if err := cfg.SaveToken(res.Token); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", res.Username)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "password, read from stdin when empty")
	return cmd
}

func predictCommand(cfg *Config) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "predict [text]",
		Short: "Classify text given as arguments, on stdin, or in a PDF/text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if file != "" {
				var err error
				if data, err = os.ReadFile(file); err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
			}
			text, err := textFromArgs(cmd, args, file != "")
			if err != nil {
				return err
			}
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				var p *pb.Prediction
				if file != "" {
					p, err = c.PredictDocument(ctx, filepath.Base(file), data)
				} else {
					p, err = c.Predict(ctx, text)
				}
				if err != nil {
					return err
				}
				printPrediction(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "PDF or plain text file")
	return cmd
}

func reanalyzeCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reanalyze <id>",
		Short: "Ask the language model again about a past submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				p, err := c.Reanalyze(ctx, args[0])
				if err != nil {
					return err
				}
				printPrediction(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
}

func feedbackCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <id> <ai|human>",
		Short: "Record what the text really was",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				if err := c.Feedback(ctx, args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "feedback saved")
				return nil
			})
		},
	}
}

func historyCommand(cfg *Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your past submissions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				entries, err := c.History(ctx, limit)
				if err != nil {
					return err
				}
				printHistory(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries")
	return cmd
}

func searchCommand(cfg *Config) *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search your past submissions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				res, err := c.Search(ctx, strings.Join(args, " "), offset)
				if err != nil {
					return err
				}
				printHistory(cmd.OutOrStdout(), res.Entries)
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d matches\n", len(res.Entries), res.Total)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "skip this many matches")
	return cmd
}

func healthCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server status and model version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, cfg, func(ctx context.Context, c *client.Client) error {
				h, err := c.Health(ctx)
				if err != nil {
					return err
				}
				printHealth(cmd.OutOrStdout(), h)
				return nil
			})
		},
	}
}

// classifyCommand runs the model locally, without a server or an account.
func classifyCommand(cfg *Config) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify locally with a model artifact (TAUTHY_MODEL_PATH)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ModelPath == "" {
				return fmt.Errorf("TAUTHY_MODEL_PATH is not set")
			}
			text, err := textFromArgs(cmd, args, file != "")
			if err != nil {
				return err
			}
			if file != "" {
				doc, err := ingest.ExtractFile(file)
				if err != nil {
					return err
				}
				text = doc.Text
			}

			start := time.Now()
			tokenizers, err := ai.LoadTokenizers(cfg.ThaiDictionaryPath)
			if err != nil {
				return err
			}
			model, err := ai.LoadModelContext(cfg.ModelPath, tokenizers, ai.WithMinTokens(cfg.MinTokens))
			if err != nil {
				return err
			}
			markers, err := moderation.NewDefaultScanner()
			if err != nil {
				return err
			}
			prediction, err := model.Predict(text)
			if err != nil {
				return err
			}
			printPrediction(cmd.OutOrStdout(), &pb.Prediction{
				Label:        prediction.Label,
				Confidence:   prediction.Confidence,
				Details:      toScores(prediction.Details),
				Markers:      markers.Phrases(text),
				ModelVersion: model.Version(),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "  model %s, %s\n", model.Version(), time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "PDF or plain text file")
	return cmd
}

// textFromArgs joins the arguments, or reads stdin when there are none.
func textFromArgs(cmd *cobra.Command, args []string, fromFile bool) (string, error) {
	if fromFile {
		if len(args) > 0 {
			return "", fmt.Errorf("give either text or --file, not both")
		}
		return "", nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func passwordOrStdin(cmd *cobra.Command, password string) (string, error) {
	if password != "" {
		return password, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// describe prints the server's message for status errors instead of the rpc prefix.
func describe(err error) string {
	if s, ok := status.FromError(err); ok {
		return s.Message()
	}
	return err.Error()
}
