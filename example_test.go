package sqlalias_test

import (
	"context"
	"fmt"

	"github.com/coregx/sqlalias"
)

func ExampleTableAliases() {
	aliases := sqlalias.TableAliases([]string{"client", "contract", "order"})
	fmt.Println(aliases)
	// Output: map[client:cl contract:cn order:o]
}

func ExampleColumnAliases() {
	aliases, err := sqlalias.ColumnAliases([]sqlalias.Pair{
		{Table: "t_paysys", Column: "name"},
		{Table: "t_passport", Column: "uid"},
		{Table: "t_payment_method", Column: "paysys_id"},
	}, 11)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(aliases)
	// Output: [py_name ps_uid pm_paysys_3]
}

func ExampleShorten() {
	fmt.Println(sqlalias.Shorten("payment"), sqlalias.Shorten("method"), sqlalias.Shorten("id"))
	// Output: pymnt mtd id
}

func ExampleAliaser_Columns() {
	a, err := sqlalias.NewAliaser(sqlalias.WithDialect("postgres"))
	if err != nil {
		fmt.Println(err)
		return
	}

	aliases, err := a.Columns(context.Background(), []sqlalias.Pair{
		{Table: "t_order", Column: "id"},
		{Table: "t_client", Column: "name"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(aliases)
	// Output: [o_id c_name]
}
