// Package email sends transactional messages such as registration invitations
// and password reset links.
//
// EmailSender is the only dependency the rest of the code takes. Two
// implementations exist: a Postmark client for real delivery and DevSender,
// which writes each message as an .html file plus a .json metadata file so a
// developer can open confirmation links locally. NewFromConfig picks one based
// on whether Postmark tokens are configured.
//
// Message bodies are templ components rendered with RenderHTML.
package email
