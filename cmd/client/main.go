package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gitlab.com/dirk.krummacker/contact-book/internal/config"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	api "gitlab.com/dirk.krummacker/contact-book/pkg/model"
)

// Usage example on the command line:
// > PORT=8080 go run main.go
// > go run main.go -list
func main() {
	listPtr := flag.Bool("list", false, "print all contacts instead of adding one")
	flag.Parse()

	baseURL := fmt.Sprintf("http://localhost:%s", config.GetEnv("PORT", "8080"))
	var err error
	if *listPtr {
		err = listContacts(http.DefaultClient, baseURL, os.Stdout)
	} else {
		err = addContact(http.DefaultClient, baseURL, bufio.NewReader(os.Stdin), os.Stdout)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// addContact asks for the contact information, stores the contact and prints it.
func addContact(client *http.Client, baseURL string, in *bufio.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome. Below insert the contact information")

	var fields [4]string
	for i, label := range []string{"First name", "Last name", "Email", "Phone"} {
		value, err := prompt(in, out, label)
		if err != nil {
			return err
		}
		fields[i] = value
	}
	contact, err := model.NewContact(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return err
	}

	body, err := json.Marshal(api.ContactInput{
		FirstName: &contact.FirstName,
		LastName:  &contact.LastName,
		Email:     &contact.Email,
		Phone:     &contact.PhoneNumber,
	})
	if err != nil {
		return err
	}
	var created api.Contact
	if err := sendRequest(client, http.MethodPost, baseURL+"/contacts", bytes.NewReader(body), http.StatusCreated, &created); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Contact name: %s\n", created.DisplayName)
	fmt.Fprintf(out, "Contact number: %s\n", created.Phone)
	fmt.Fprintf(out, "Contact email: %s\n", created.Email)
	return nil
}

// listContacts prints one line per stored contact.
func listContacts(client *http.Client, baseURL string, out io.Writer) error {
	var contacts []api.Contact
	if err := sendRequest(client, http.MethodGet, baseURL+"/contacts", nil, http.StatusOK, &contacts); err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Fprintln(out, "No contacts yet.")
		return nil
	}
	for _, c := range contacts {
		fmt.Fprintf(out, "%4d  %-30s %-30s %s\n", c.Id, c.DisplayName, c.Email, c.Phone)
	}
	return nil
}

// prompt prints the label and reads one line. The line is returned as typed, without the line break.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("could not read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// sendRequest executes the request and decodes the JSON response into result. A status other than
// wantStatus is reported with the message of the service.
func sendRequest(client *http.Client, method string, requestURL string, body io.Reader, wantStatus int, result any) error {
	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making http request: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if res.StatusCode != wantStatus {
		var msg api.Message
		if json.Unmarshal(resBody, &msg) == nil && msg.Message != "" {
			return fmt.Errorf("%s: %s", res.Status, msg.Message)
		}
		return errors.New(res.Status)
	}
	if err := json.Unmarshal(resBody, result); err != nil {
		return fmt.Errorf("could not unmarshal JSON: %w", err)
	}
	return nil
}
