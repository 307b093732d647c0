package cmd

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/kernel/kit/pkg/convert"
	"github.com/kernel/kit/pkg/datefmt"
	"github.com/kernel/kit/pkg/strutil"
	"github.com/kernel/kit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Registered claims holding NumericDate seconds.
var timeClaims = map[string]bool{"exp": true, "iat": true, "nbf": true}

// JWTInput holds input for decoding a token.
type JWTInput struct {
	Token  string
	Output string
}

// DecodeJWT prints the payload claims of a JWT without verifying it.
func DecodeJWT(in JWTInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	claims, err := convert.DecodeJWT(in.Token)
	if err != nil {
		return err
	}
	if in.Output == "json" {
		return util.PrintPrettyJSON(claims)
	}

	keys := lo.Keys(claims)
	slices.Sort(keys)
	ref := now()

	rows := pterm.TableData{{"Claim", "Value"}}
	for _, k := range keys {
		rows = append(rows, []string{k, claimString(k, claims[k])})
	}
	PrintTableNoPad(rows, true)

	if exp, ok := claims["exp"].(float64); ok {
		if at := datefmt.FromUnixMilli(int64(exp * 1000)); at.Before(ref) {
			pterm.Warning.Printf("Token expired %s\n", datefmt.NicerDateTime(at, ref))
		}
	}
	pterm.Info.Println("Signature not verified")
	return nil
}

func claimString(key string, v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if timeClaims[key] {
			at := datefmt.FromUnixMilli(int64(t * 1000))
			return fmt.Sprintf("%.0f (%s)", t, datefmt.DateTime(at))
		}
		return fmt.Sprintf("%g", t)
	case []any:
		strs := lo.Map(t, func(item any, _ int) string { return fmt.Sprint(item) })
		return strutil.JoinTo(strs, 3, ", ")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

var jwtCmd = &cobra.Command{
	Use:   "jwt <token>",
	Short: "Decode the claims of a JWT",
	Long:  "Decode and print the payload of a JWT. The signature is not verified.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return DecodeJWT(JWTInput{Token: args[0], Output: output})
	},
}

func init() {
	rootCmd.AddCommand(jwtCmd)

	addOutputFlag(jwtCmd.Flags())
}
